package service

import (
	"testing"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/testutil"
)

// buatOrderSelesai creates a finished order with one 10-pcs item from bat-001.
func buatOrderSelesai(t *testing.T, d *testDeps) *entity.OrderPenjualan {
	t.Helper()
	ctx := testCtx()
	testutil.SeedBatch(t, d.db, "bat-001", "KP-BLK-01", 50, 50)

	order, err := d.order.BuatOrder(ctx, BuatOrderRequest{
		Channel: entity.ChannelShopee,
		Items:   []OrderItemRequest{{BatchID: "bat-001", Qty: 10}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatOrder: %v", err)
	}
	done, err := d.order.SelesaikanOrder(ctx, order.ID, "admin")
	if err != nil {
		t.Fatalf("SelesaikanOrder: %v", err)
	}
	return done
}

func TestAjukanReturCustomer(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	order := buatOrderSelesai(t, d)

	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID:   order.ID,
		ItemIndex: 0,
		Qty:       3,
		Alasan:    "ukuran tidak sesuai",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}
	if rc.Status != entity.ReturCustMenunggu {
		t.Errorf("Expected Menunggu Pengecekan, got %s", rc.Status)
	}
	if rc.BatchID != "bat-001" {
		t.Errorf("Expected batch snapshot bat-001, got %s", rc.BatchID)
	}
	if rc.OrderNo != order.No {
		t.Errorf("Expected order no %s, got %s", order.No, rc.OrderNo)
	}

	// Return must not exceed the ordered quantity
	_, err = d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID:   order.ID,
		ItemIndex: 0,
		Qty:       11,
		Alasan:    "x",
	}, "admin")
	assertKind(t, err, KindValidation)

	_, err = d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID:   order.ID,
		ItemIndex: 5,
		Qty:       1,
		Alasan:    "x",
	}, "admin")
	assertKind(t, err, KindValidation)
}

func TestAjukanReturHanyaOrderSelesai(t *testing.T) {
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

	_, err = d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID,
		Qty:     1,
		Alasan:  "x",
	}, "admin")
	assertKind(t, err, KindInvalidState)
}

func TestMusnahkanRetur(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	order := buatOrderSelesai(t, d)

	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID, Qty: 2, Alasan: "rusak",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}

	resolved, err := d.retur.Musnahkan(ctx, rc.ID, "admin")
	if err != nil {
		t.Fatalf("Musnahkan: %v", err)
	}
	if resolved.Status != entity.ReturCustDimusnahkan {
		t.Errorf("Expected Dimusnahkan, got %s", resolved.Status)
	}

	// No stock effect
	var batch entity.StokBatch
	d.db.First(&batch, "id = ?", "bat-001")
	if batch.Sisa != 40 {
		t.Errorf("Expected sisa 40, got %d", batch.Sisa)
	}

	// Resolution is terminal
	_, err = d.retur.Tukar(ctx, rc.ID, TukarReturRequest{BatchID: "bat-001", Qty: 1}, "admin")
	assertKind(t, err, KindInvalidState)
}

func TestTukarRetur(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	order := buatOrderSelesai(t, d)
	testutil.SeedBatch(t, d.db, "bat-002", "KP-BLK-02", 30, 30)

	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID, Qty: 3, Alasan: "tukar ukuran",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}

	resolved, err := d.retur.Tukar(ctx, rc.ID, TukarReturRequest{BatchID: "bat-002", Qty: 3}, "admin")
	if err != nil {
		t.Fatalf("Tukar: %v", err)
	}
	if resolved.Status != entity.ReturCustSelesaiDitukar {
		t.Errorf("Expected Selesai Ditukar, got %s", resolved.Status)
	}

	// Returned qty credited to origin batch, replacement cut from chosen batch
	var b1, b2 entity.StokBatch
	d.db.First(&b1, "id = ?", "bat-001")
	d.db.First(&b2, "id = ?", "bat-002")
	if b1.Sisa != 43 {
		t.Errorf("Expected bat-001 sisa 43, got %d", b1.Sisa)
	}
	if b2.Sisa != 27 {
		t.Errorf("Expected bat-002 sisa 27, got %d", b2.Sisa)
	}
}

func TestTukarReturStokKurang(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	order := buatOrderSelesai(t, d)
	testutil.SeedBatch(t, d.db, "bat-002", "KP-BLK-02", 30, 1)

	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID, Qty: 3, Alasan: "tukar",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}

	_, err = d.retur.Tukar(ctx, rc.ID, TukarReturRequest{BatchID: "bat-002", Qty: 2}, "admin")
	assertKind(t, err, KindInsufficientStock)

	// Failed exchange leaves everything untouched
	cur, _ := d.retur.ListCustomer(ctx)
	if cur[0].Status != entity.ReturCustMenunggu {
		t.Errorf("Expected still Menunggu Pengecekan, got %s", cur[0].Status)
	}
	var b1 entity.StokBatch
	d.db.First(&b1, "id = ?", "bat-001")
	if b1.Sisa != 40 {
		t.Errorf("Expected bat-001 sisa 40, got %d", b1.Sisa)
	}
}

func TestReturKeVendorDanAlurVendor(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	order := buatOrderSelesai(t, d)

	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID, Qty: 4, Alasan: "cacat produksi",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}

	resolved, err := d.retur.KirimKeVendor(ctx, rc.ID, "admin")
	if err != nil {
		t.Fatalf("KirimKeVendor: %v", err)
	}
	if resolved.Status != entity.ReturCustDikirimKeVendor {
		t.Errorf("Expected Dikirim ke Vendor, got %s", resolved.Status)
	}

	rvs, _ := d.retur.ListVendor(ctx)
	if len(rvs) != 1 {
		t.Fatalf("Expected 1 retur vendor, got %d", len(rvs))
	}
	rv := rvs[0]
	if rv.Sumber != entity.SumberReturCustomer || rv.Qty != 4 {
		t.Errorf("Unexpected retur vendor %+v", rv)
	}

	// Menunggu -> Di Vendor
	sent, err := d.retur.KirimReturVendor(ctx, rv.ID, "admin")
	if err != nil {
		t.Fatalf("KirimReturVendor: %v", err)
	}
	if sent.Status != entity.ReturVendorDiVendor {
		t.Errorf("Expected Di Vendor, got %s", sent.Status)
	}

	// Di Vendor -> Masuk Gudang creates a fresh batch
	back, err := d.retur.MasukGudang(ctx, rv.ID, "admin")
	if err != nil {
		t.Fatalf("MasukGudang: %v", err)
	}
	if back.Status != entity.ReturVendorMasukGudang {
		t.Errorf("Expected Masuk Gudang, got %s", back.Status)
	}

	var batches []entity.StokBatch
	d.db.Where("pnr_no = ?", "RTV-"+rv.ID).Find(&batches)
	if len(batches) != 1 {
		t.Fatalf("Expected replacement batch, got %d", len(batches))
	}
	if batches[0].Masuk != 4 || batches[0].Sisa != 4 {
		t.Errorf("Expected batch 4/4, got %d/%d", batches[0].Masuk, batches[0].Sisa)
	}

	// Terminal; refund after Masuk Gudang is rejected
	_, err = d.retur.RefundVendor(ctx, rv.ID, "admin")
	assertKind(t, err, KindInvalidState)
}

func TestRefundVendor(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	order := buatOrderSelesai(t, d)

	rc, err := d.retur.AjukanReturCustomer(ctx, AjukanReturCustomerRequest{
		OrderID: order.ID, Qty: 2, Alasan: "cacat",
	}, "admin")
	if err != nil {
		t.Fatalf("AjukanReturCustomer: %v", err)
	}
	if _, err := d.retur.KirimKeVendor(ctx, rc.ID, "admin"); err != nil {
		t.Fatalf("KirimKeVendor: %v", err)
	}
	rvs, _ := d.retur.ListVendor(ctx)
	rv := rvs[0]

	// Refund requires the goods to be at the vendor first
	_, err = d.retur.RefundVendor(ctx, rv.ID, "admin")
	assertKind(t, err, KindInvalidState)

	if _, err := d.retur.KirimReturVendor(ctx, rv.ID, "admin"); err != nil {
		t.Fatalf("KirimReturVendor: %v", err)
	}
	refunded, err := d.retur.RefundVendor(ctx, rv.ID, "admin")
	if err != nil {
		t.Fatalf("RefundVendor: %v", err)
	}
	if refunded.Status != entity.ReturVendorRefund {
		t.Errorf("Expected Uang Dikembalikan, got %s", refunded.Status)
	}

	// Refund never creates stock
	var batchCount int64
	d.db.Model(&entity.StokBatch{}).Where("pnr_no = ?", "RTV-"+rv.ID).Count(&batchCount)
	if batchCount != 0 {
		t.Errorf("Expected no batch after refund, got %d", batchCount)
	}
}

func TestAlurReturSupplier(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	testutil.SeedSupplier(t, d.db, "sup-001", "SUP-TM-01", "Textile Mandiri")

	roll, err := d.roll.TerimaRoll(ctx, TerimaRollRequest{SupplierID: "sup-001", Jenis: "Katun", Meter: 20}, "admin")
	if err != nil {
		t.Fatalf("TerimaRoll: %v", err)
	}
	rs, err := d.roll.ReturManual(ctx, roll.ID, "cacat", "admin")
	if err != nil {
		t.Fatalf("ReturManual: %v", err)
	}

	// Branch choices are blocked before the roll is shipped
	_, err = d.retur.TerimaPengganti(ctx, rs.ID, "admin")
	assertKind(t, err, KindInvalidState)
	_, err = d.retur.CatatKerugian(ctx, rs.ID, "admin")
	assertKind(t, err, KindInvalidState)

	sent, err := d.retur.KirimKeSupplier(ctx, rs.ID, "admin")
	if err != nil {
		t.Fatalf("KirimKeSupplier: %v", err)
	}
	if sent.Status != entity.ReturSuppSudahDikirim {
		t.Errorf("Expected Sudah Dikirim, got %s", sent.Status)
	}

	done, err := d.retur.TerimaPengganti(ctx, rs.ID, "admin")
	if err != nil {
		t.Fatalf("TerimaPengganti: %v", err)
	}
	if done.Status != entity.ReturSuppPenggantiDiterima {
		t.Errorf("Expected Pengganti Diterima, got %s", done.Status)
	}

	// Terminal
	_, err = d.retur.CatatKerugian(ctx, rs.ID, "admin")
	assertKind(t, err, KindInvalidState)
}
