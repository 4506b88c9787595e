package service

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/testutil"
)

// testDeps wires the domain services against an isolated test schema.
type testDeps struct {
	db    *gorm.DB
	repos *repository.Repositories

	catalog    *CatalogService
	roll       *RollService
	sp         *SPService
	penerimaan *PenerimaanService
	order      *OrderService
	retur      *ReturService
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return &testDeps{
		db:         db,
		repos:      repos,
		catalog:    NewCatalogService(repos.Catalog, repos.Batch, repos.Audit, db),
		roll:       NewRollService(repos.Roll, repos.Catalog, repos.Retur, repos.Audit, db),
		sp:         NewSPService(repos.SP, repos.Roll, repos.Catalog, repos.Audit, db),
		penerimaan: NewPenerimaanService(repos.Penerimaan, repos.SP, repos.Batch, repos.Retur, repos.Catalog, repos.Audit, db),
		order:      NewOrderService(repos.Order, repos.Batch, repos.Catalog, repos.Audit, db),
		retur:      NewReturService(repos.Retur, repos.Order, repos.Batch, repos.Audit, db),
	}
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s error, got nil", want)
	}
	if got := KindOf(err); got != want {
		t.Fatalf("Expected %s error, got %s (%v)", want, got, err)
	}
}

func testCtx() context.Context {
	return context.Background()
}
