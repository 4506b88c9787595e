package service

import (
	"strings"
	"testing"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
)

// buatSPDikirim seeds the fixtures and walks one SP to Dikirim.
func buatSPDikirim(t *testing.T, d *testDeps, target int) *entity.SuratPesanan {
	t.Helper()
	ctx := testCtx()
	seedSPFixtures(t, d)
	roll := terimaRollTersedia(t, d, 50)

	sp, err := d.sp.BuatDraft(ctx, BuatSPRequest{
		VendorID: "ven-001",
		Rows:     []SPRowRequest{{SKU: "KP-BLK-01", Target: target}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatDraft: %v", err)
	}
	sent, err := d.sp.KirimSP(ctx, sp.ID, []string{roll.ID}, "admin")
	if err != nil {
		t.Fatalf("KirimSP: %v", err)
	}
	return sent
}

func TestTerimaBarang(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	sp := buatSPDikirim(t, d, 100)

	pnr, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 40}},
	}, "admin")
	if err != nil {
		t.Fatalf("TerimaBarang: %v", err)
	}
	wantPrefix := "PNR-" + strings.TrimPrefix(sp.No, "SP-") + "-"
	if !strings.HasPrefix(pnr.No, wantPrefix) {
		t.Errorf("Expected number prefix %s, got %s", wantPrefix, pnr.No)
	}
	if pnr.Status != entity.PenerimaanMenungguQC {
		t.Errorf("Expected Menunggu QC, got %s", pnr.Status)
	}
	if pnr.TotalDikirim != 40 {
		t.Errorf("Expected total 40, got %d", pnr.TotalDikirim)
	}
	if pnr.Items[0].Produk != "Kemeja Hitam" {
		t.Errorf("Expected snapshot from SP row, got %q", pnr.Items[0].Produk)
	}

	// Partial delivery moves the SP to Sebagian
	cur, _ := d.sp.Get(ctx, sp.ID)
	if cur.Status != entity.SPSebagian {
		t.Errorf("Expected SP Sebagian, got %s", cur.Status)
	}
	if cur.Diterima != 40 {
		t.Errorf("Expected diterima 40, got %d", cur.Diterima)
	}
}

func TestTerimaBarangSelesaikanSP(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	sp := buatSPDikirim(t, d, 100)

	if _, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 60}},
	}, "admin"); err != nil {
		t.Fatalf("TerimaBarang 1: %v", err)
	}
	if _, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 45}},
	}, "admin"); err != nil {
		t.Fatalf("TerimaBarang 2: %v", err)
	}

	// Over-delivery past the target still closes the SP
	cur, _ := d.sp.Get(ctx, sp.ID)
	if cur.Status != entity.SPSelesai {
		t.Errorf("Expected SP Selesai, got %s", cur.Status)
	}
	if cur.Diterima != 105 {
		t.Errorf("Expected diterima 105, got %d", cur.Diterima)
	}
}

func TestTerimaBarangBonusItem(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	sp := buatSPDikirim(t, d, 100)

	pnr, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID: sp.ID,
		Items: []PenerimaanItemRequest{
			{SKU: "KP-BLK-01", Dikirim: 30},
			{SKU: "KP-BLK-02", Dikirim: 5},
		},
	}, "admin")
	if err != nil {
		t.Fatalf("TerimaBarang: %v", err)
	}

	var bonus *entity.PenerimaanItem
	for i := range pnr.Items {
		if pnr.Items[i].SKU == "KP-BLK-02" {
			bonus = &pnr.Items[i]
		}
	}
	if bonus == nil {
		t.Fatal("Expected bonus item in penerimaan")
	}
	if !bonus.IsBonus {
		t.Error("Expected SKU outside SP rows to be flagged bonus")
	}
	if bonus.Produk != "Kemeja Hitam" {
		t.Errorf("Expected catalog snapshot for bonus item, got %q", bonus.Produk)
	}
}

func TestTerimaBarangDitolakUntukDraft(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	seedSPFixtures(t, d)

	sp, err := d.sp.BuatDraft(ctx, BuatSPRequest{
		VendorID: "ven-001",
		Rows:     []SPRowRequest{{SKU: "KP-BLK-01", Target: 50}},
	}, "admin")
	if err != nil {
		t.Fatalf("BuatDraft: %v", err)
	}

	_, err = d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 10}},
	}, "admin")
	assertKind(t, err, KindInvalidState)
}

func TestSimpanQC(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	sp := buatSPDikirim(t, d, 100)

	pnr, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 40}},
	}, "admin")
	if err != nil {
		t.Fatalf("TerimaBarang: %v", err)
	}

	done, err := d.penerimaan.SimpanQC(ctx, pnr.ID, []QCResultRequest{
		{ItemID: pnr.Items[0].ID, Lolos: 35, Gagal: 5, Alasan: "jahitan lepas"},
	}, "admin")
	if err != nil {
		t.Fatalf("SimpanQC: %v", err)
	}
	if done.Status != entity.PenerimaanSelesaiQC {
		t.Errorf("Expected Selesai QC, got %s", done.Status)
	}
	if done.TotalLolos != 35 || done.TotalGagal != 5 {
		t.Errorf("Expected totals 35/5, got %d/%d", done.TotalLolos, done.TotalGagal)
	}

	// Passed quantity opens a new stock batch
	var batches []entity.StokBatch
	d.db.Find(&batches)
	if len(batches) != 1 {
		t.Fatalf("Expected 1 batch, got %d", len(batches))
	}
	if batches[0].Masuk != 35 || batches[0].Sisa != 35 {
		t.Errorf("Expected batch 35/35, got %d/%d", batches[0].Masuk, batches[0].Sisa)
	}
	if batches[0].PNRNo != done.No {
		t.Errorf("Expected batch linked to %s, got %s", done.No, batches[0].PNRNo)
	}

	// Failed quantity opens a vendor return
	rvs, _ := d.retur.ListVendor(ctx)
	if len(rvs) != 1 {
		t.Fatalf("Expected 1 retur vendor, got %d", len(rvs))
	}
	if rvs[0].Qty != 5 || rvs[0].Sumber != entity.SumberQCGagal {
		t.Errorf("Unexpected retur vendor %+v", rvs[0])
	}

	// QC can only be closed once
	_, err = d.penerimaan.SimpanQC(ctx, pnr.ID, []QCResultRequest{
		{ItemID: pnr.Items[0].ID, Lolos: 40},
	}, "admin")
	assertKind(t, err, KindInvalidState)
}

func TestSimpanQCImbalance(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	sp := buatSPDikirim(t, d, 100)

	pnr, err := d.penerimaan.TerimaBarang(ctx, TerimaBarangRequest{
		SPID:  sp.ID,
		Items: []PenerimaanItemRequest{{SKU: "KP-BLK-01", Dikirim: 40}},
	}, "admin")
	if err != nil {
		t.Fatalf("TerimaBarang: %v", err)
	}

	// lolos + gagal != dikirim
	_, err = d.penerimaan.SimpanQC(ctx, pnr.ID, []QCResultRequest{
		{ItemID: pnr.Items[0].ID, Lolos: 30, Gagal: 5},
	}, "admin")
	assertKind(t, err, KindQCImbalance)

	// Missing item result
	_, err = d.penerimaan.SimpanQC(ctx, pnr.ID, nil, "admin")
	assertKind(t, err, KindQCImbalance)

	// Negative result
	_, err = d.penerimaan.SimpanQC(ctx, pnr.ID, []QCResultRequest{
		{ItemID: pnr.Items[0].ID, Lolos: 45, Gagal: -5},
	}, "admin")
	assertKind(t, err, KindValidation)

	// Rejected QC leaves no stock and no returns behind
	var batchCount int64
	d.db.Model(&entity.StokBatch{}).Count(&batchCount)
	if batchCount != 0 {
		t.Errorf("Expected no batches after rejected QC, got %d", batchCount)
	}
	cur, _ := d.penerimaan.Get(ctx, pnr.ID)
	if cur.Status != entity.PenerimaanMenungguQC {
		t.Errorf("Expected still Menunggu QC, got %s", cur.Status)
	}
}
