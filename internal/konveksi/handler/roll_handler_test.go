package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/testutil"
)

func setupRollTest(t *testing.T) (*gin.Engine, *testutil.TestEnv) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SeedSupplier(t, db, "sup-001", "SUP-TM-01", "Textile Mandiri")

	repos := repository.NewRepositories(db)
	rollSvc := service.NewRollService(repos.Roll, repos.Catalog, repos.Retur, repos.Audit, db)
	rollHandler := NewRollHandler(rollSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	rolls := api.Group("/rolls")
	rolls.GET("", rollHandler.List)
	rolls.GET("/:id", rollHandler.Get)
	rolls.POST("", rollHandler.Create)
	rolls.DELETE("/:id", rollHandler.Delete)
	rolls.POST("/:id/retur", rollHandler.ReturManual)

	return router, &testutil.TestEnv{DB: db, Router: router, T: t}
}

func createRoll(t *testing.T, router *gin.Engine, token string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/rolls", map[string]interface{}{
		"supplier_id": "sup-001",
		"jenis":       "Katun Combed 30s",
		"meter":       50.5,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestRollCreate(t *testing.T) {
	router, _ := setupRollTest(t)
	token := testutil.DefaultTestToken()

	roll := createRoll(t, router, token)
	barcode, _ := roll["barcode"].(string)
	if !strings.HasPrefix(barcode, "BB-TM-") {
		t.Errorf("Expected barcode starting with BB-TM-, got %v", roll["barcode"])
	}
	if roll["status"] != "Tersedia" {
		t.Errorf("Expected status Tersedia, got %v", roll["status"])
	}
	if roll["supplier_nama"] != "Textile Mandiri" {
		t.Errorf("Expected supplier snapshot, got %v", roll["supplier_nama"])
	}
}

func TestRollCreateValidation(t *testing.T) {
	router, _ := setupRollTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/rolls", map[string]interface{}{
		"supplier_id": "sup-001",
		"jenis":       "Katun",
		"meter":       0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for zero meter, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "POST", "/api/v1/rolls", map[string]interface{}{
		"supplier_id": "sup-missing",
		"jenis":       "Katun",
		"meter":       10,
	}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown supplier, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRollList(t *testing.T) {
	router, _ := setupRollTest(t)
	token := testutil.DefaultTestToken()

	createRoll(t, router, token)
	createRoll(t, router, token)

	w := testutil.DoRequest(router, "GET", "/api/v1/rolls?status=Tersedia", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array, got %T", resp["data"])
	}
	if len(data) != 2 {
		t.Errorf("Expected 2 rolls, got %d", len(data))
	}
}

func TestRollReturManual(t *testing.T) {
	router, _ := setupRollTest(t)
	token := testutil.DefaultTestToken()

	roll := createRoll(t, router, token)
	rollID := roll["id"].(string)

	w := testutil.DoRequest(router, "POST", "/api/v1/rolls/"+rollID+"/retur",
		map[string]string{"alasan": "cacat tenun"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["sumber"] != "Manual" {
		t.Errorf("Expected sumber Manual, got %v", data["sumber"])
	}

	// A roll in the return warehouse cannot be deleted
	w = testutil.DoRequest(router, "DELETE", "/api/v1/rolls/"+rollID, nil, token)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRollUnauthorized(t *testing.T) {
	router, _ := setupRollTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/rolls", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
}
