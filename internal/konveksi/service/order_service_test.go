package service

import (
	"strings"
	"testing"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/testutil"
)

func TestBuatOrder(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 50)

	order, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelShopee,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 10}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder: %v", err)
	}
	if !strings.HasPrefix(order.No, "PJ-SHP-") || !strings.HasSuffix(order.No, "-001") {
		t.Errorf("Unexpected order number %s", order.No)
	}
	if order.Status != entity.OrderDraft {
		t.Errorf("Expected Draft, got %s", order.Status)
	}
	if order.Tipe != entity.TipeRetail {
		t.Errorf("Expected default tipe Retail, got %s", order.Tipe)
	}
	if order.TotalPcs != 10 {
		t.Errorf("Expected 10 pcs, got %d", order.TotalPcs)
	}

	// Stock is cut at creation
	var batch entity.StokBatch
	d.db.First(&batch, "id = ?", "bat-001")
	if batch.Sisa != 40 {
		t.Errorf("Expected sisa 40, got %d", batch.Sisa)
	}
}

func TestBuatOrderValidation(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 50)

	_, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: "Lazada",
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 1}},
	}, "admin")
	assertKind(t, err, KindValidation)

	_, err = d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelShopee,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 0}},
	}, "admin")
	assertKind(t, err, KindValidation)

	_, err = d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelShopee,
		Items:   []OrderItemRequest{{BatchID: "bat-missing", Qty: 1}},
	}, "admin")
	assertKind(t, err, KindNotFound)
}

func TestBuatOrderStokKurang(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 5)

	_, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelOffline,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 6}},
	}, "admin")
	assertKind(t, err, KindInsufficientStock)

	// Rejected order must not touch the batch
	var batch entity.StokBatch
	d.db.First(&batch, "id = ?", "bat-001")
	if batch.Sisa != 5 {
		t.Errorf("Expected sisa unchanged at 5, got %d", batch.Sisa)
	}
}

func TestBuatOrderDeltaTerakumulasiPerBatch(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 5)

	// Two items against the same batch; individually fine, combined over
	_, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelOffline,
		Items: []OrderItemRequest{
			{BatchID: "bat-001", Qty: 3},
			{BatchID: "bat-001", Qty: 3},
		},
	}, "admin")
	assertKind(t, err, KindInsufficientStock)

	var batch entity.StokBatch
	d.db.First(&batch, "id = ?", "bat-001")
	if batch.Sisa != 5 {
		t.Errorf("Expected sisa unchanged at 5, got %d", batch.Sisa)
	}
}

func TestEditOrder(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 50)
	testutil.SeedBatch(t, d.db, "bat-002", "KP-BLK-02", 30, 30)

	order, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelShopee,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 10}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder: %v", err)
	}

	edited, err := d.order.EditOrder(ctx, order.ID, []OrderItemRequest{
		{BatchID: "bat-002", Qty: 8},
	}, "admin")
	if err != nil {
		t.Fatalf("EditOrder: %v", err)
	}
	if edited.TotalPcs != 8 {
		t.Errorf("Expected 8 pcs, got %d", edited.TotalPcs)
	}

	// Old batch credited back, new batch cut
	var b1, b2 entity.StokBatch
	d.db.First(&b1, "id = ?", "bat-001")
	d.db.First(&b2, "id = ?", "bat-002")
	if b1.Sisa != 50 {
		t.Errorf("Expected bat-001 restored to 50, got %d", b1.Sisa)
	}
	if b2.Sisa != 22 {
		t.Errorf("Expected bat-002 cut to 22, got %d", b2.Sisa)
	}
}

func TestSelesaikanDanBatalkanOrder(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 50)

	order, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelTikTok,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 10}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder: %v", err)
	}

	done, err := d.order.SelesaikanOrder(ctx, order.ID, "admin")
	if err != nil {
		t.Fatalf("SelesaikanOrder: %v", err)
	}
	if done.Status != entity.OrderSelesai {
		t.Errorf("Expected Selesai, got %s", done.Status)
	}

	// Completion has no stock effect
	var batch entity.StokBatch
	d.db.First(&batch, "id = ?", "bat-001")
	if batch.Sisa != 40 {
		t.Errorf("Expected sisa still 40, got %d", batch.Sisa)
	}

	// Completed orders cannot be cancelled
	_, err = d.order.BatalkanOrder(ctx, order.ID, "admin")
	assertKind(t, err, KindInvalidState)

	// Cancel a second draft and verify the stock comes back
	order2, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelTikTok,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 15}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder 2: %v", err)
	}
	cancelled, err := d.order.BatalkanOrder(ctx, order2.ID, "admin")
	if err != nil {
		t.Fatalf("BatalkanOrder: %v", err)
	}
	if cancelled.Status != entity.OrderDibatalkan {
		t.Errorf("Expected Dibatalkan, got %s", cancelled.Status)
	}
	d.db.First(&batch, "id = ?", "bat-001")
	if batch.Sisa != 40 {
		t.Errorf("Expected sisa back to 40, got %d", batch.Sisa)
	}
}

func TestHapusOrder(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 50)

	order, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelOffline,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 10}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder: %v", err)
	}

	// Draft must be cancelled first so stock is not silently lost
	err = d.order.HapusOrder(ctx, order.ID, "admin")
	assertKind(t, err, KindInvalidState)

	if _, err := d.order.BatalkanOrder(ctx, order.ID, "admin"); err != nil {
		t.Fatalf("BatalkanOrder: %v", err)
	}
	if err := d.order.HapusOrder(ctx, order.ID, "admin"); err != nil {
		t.Fatalf("HapusOrder: %v", err)
	}
	_, err = d.order.Get(ctx, order.ID)
	assertKind(t, err, KindNotFound)
}
