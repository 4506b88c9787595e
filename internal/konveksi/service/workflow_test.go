package service

import (
	"testing"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/testutil"
)

// TestAlurProduksiLengkap walks one garment from raw fabric to a resolved
// customer return: intake roll, dispatch SP, receive and QC the delivery,
// sell from the resulting batch, then exchange a returned piece.
func TestAlurProduksiLengkap(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedSupplier(t, d.db, "sup-001", "SUP-TM-01", "Textile Mandiri")
	testutil.SeedVendor(t, d.db, "ven-001", "VN01", "Konveksi Jaya")
	testutil.SeedProduk(t, d.db, "prd-001", "KP-BLK-01", "Kemeja Hitam", "M")

	// Fabric intake
	roll, err := d.roll.TerimaRoll(ctx, TerimaRollRequest{
		SupplierID: "sup-001", Jenis: "Katun Combed", Meter: 80,
	}, "admin")
	if err != nil {
		t.Fatalf("TerimaRoll: %v", err)
	}

	// Production order to the vendor
	sp, err := d.sp.BuatDraft(ctx, BuatSPRequest{
		VendorID: "ven-001",
		Rows:     []SPRowRequest{{SKU: "KP-BLK-01", Target: 50}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatDraft: %v", err)
	}
	if sp, err = d.sp.KirimSP(ctx, sp.ID, []string{roll.ID}, "admin"); err != nil {
		t.Fatalf("KirimSP: %v", err)
	}

	// Vendor delivers everything in one shipment
	pnr, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 50}},
	}, "admin")
	if err != nil {
		t.Fatalf("TerimaBarang: %v", err)
	}
	cur, _ := d.sp.Get(ctx, sp.ID)
	if cur.Status != entity.SPSelesai {
		t.Fatalf("Expected SP Selesai, got %s", cur.Status)
	}

	// QC: 48 pass, 2 fail
	if _, err := d.penerimaan.SimpanQC(ctx, pnr.ID, []QCResultRequest{
		{ItemID: pnr.Items[0].ID, Lolos: 48, Gagal: 2, Alasan: "jahitan"},
	}, "admin"); err != nil {
		t.Fatalf("SimpanQC: %v", err)
	}

	var batch entity.StokBatch
	if err := d.db.First(&batch, "pnr_no = ?", pnr.No).Error; err != nil {
		t.Fatalf("expected batch from QC: %v", err)
	}
	if batch.Sisa != 48 {
		t.Fatalf("Expected batch sisa 48, got %d", batch.Sisa)
	}

	// Sell 10 pieces and complete the order
	order, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelShopee,
		Items:   []OrderItemRequest{{BatchID: batch.ID, Qty: 10}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder: %v", err)
	}
	if _, err := d.order.SelesaikanOrder(ctx, order.ID, "admin"); err != nil {
		t.Fatalf("SelesaikanOrder: %v", err)
	}
	d.db.First(&batch, "id = ?", batch.ID)
	if batch.Sisa != 38 {
		t.Fatalf("Expected sisa 38 after sale, got %d", batch.Sisa)
	}

	// Customer returns 2, exchanged from the same batch
	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID, Qty: 2, Alasan: "ukuran salah",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}
	if _, err := d.retur.Tukar(ctx, rc.ID, TukarReturRequest{BatchID: batch.ID, Qty: 2}, "admin"); err != nil {
		t.Fatalf("Tukar: %v", err)
	}

	// Credit and debit cancel out on the same batch
	d.db.First(&batch, "id = ?", batch.ID)
	if batch.Sisa != 38 {
		t.Fatalf("Expected sisa back at 38, got %d", batch.Sisa)
	}

	// The failed QC pieces went through the vendor return pipeline
	rvs, _ := d.retur.ListVendor(ctx)
	if len(rvs) != 1 || rvs[0].Qty != 2 {
		t.Fatalf("Expected QC failure retur vendor of 2 pcs, got %+v", rvs)
	}

	// Everything above left an audit trail
	n, err := d.repos.Audit.Count(ctx)
	if err != nil {
		t.Fatalf("audit Count: %v", err)
	}
	if n < 8 {
		t.Errorf("Expected at least 8 audit entries, got %d", n)
	}
}
