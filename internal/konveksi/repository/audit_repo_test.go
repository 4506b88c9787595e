package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/testutil"
)

func TestAuditAppendDanList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, "Terima Roll", fmt.Sprintf("roll %d", i), "admin"); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, total, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	// Newest first
	if entries[0].Detail != "roll 2" {
		t.Errorf("Expected newest entry first, got %q", entries[0].Detail)
	}
}

func TestAuditCap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	// Bulk-insert just under the cap, then push past it via Append
	for i := 0; i < entity.MaxAuditEntries; i++ {
		e := &entity.AuditEntry{
			ID:       fmt.Sprintf("seed-%04d", i),
			Action:   "Seed",
			Detail:   fmt.Sprintf("entry %d", i),
			Username: "admin",
		}
		if err := db.Create(e).Error; err != nil {
			t.Fatalf("seed entry %d: %v", i, err)
		}
	}

	for i := 0; i < 10; i++ {
		if err := repo.Append(ctx, "Buat Order", fmt.Sprintf("order %d", i), "admin"); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != entity.MaxAuditEntries {
		t.Errorf("Expected trail capped at %d, got %d", entity.MaxAuditEntries, n)
	}

	// The newest entries survive the trim
	entries, _, err := repo.List(ctx, 1, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if entries[0].Detail != "order 9" {
		t.Errorf("Expected newest entry kept, got %q", entries[0].Detail)
	}
}
