package service

import (
	"testing"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
)

func TestBuatKategoriDanProduk(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	if err := d.catalog.SeedWarna(ctx); err != nil {
		t.Fatalf("SeedWarna: %v", err)
	}

	k, err := d.catalog.BuatKategori(ctx, "Kemeja Pria", "admin")
	if err != nil {
		t.Fatalf("BuatKategori: %v", err)
	}
	if k.Kode != "KP" {
		t.Errorf("Expected kode KP, got %s", k.Kode)
	}

	// Same initials collide
	_, err = d.catalog.BuatKategori(ctx, "Kaos Polos", "admin")
	assertKind(t, err, KindDuplicateKey)

	p1, err := d.catalog.BuatProduk(ctx, ProdukRequest{
		Nama: "Kemeja Oxford", KategoriKode: "KP", WarnaKode: "BLK", Ukuran: "m",
	}, "admin")
	if err != nil {
		t.Fatalf("BuatProduk: %v", err)
	}
	if p1.SKU != "KP-BLK-01" {
		t.Errorf("Expected SKU KP-BLK-01, got %s", p1.SKU)
	}
	if p1.Ukuran != "M" {
		t.Errorf("Expected ukuran uppercased, got %s", p1.Ukuran)
	}
	if p1.MinStok != 10 {
		t.Errorf("Expected default min stok 10, got %d", p1.MinStok)
	}
	if p1.Warna != "Hitam" {
		t.Errorf("Expected warna snapshot Hitam, got %s", p1.Warna)
	}

	// Sequence per kategori+warna
	p2, err := d.catalog.BuatProduk(ctx, ProdukRequest{
		Nama: "Kemeja Flanel", KategoriKode: "KP", WarnaKode: "BLK", Ukuran: "L",
	}, "admin")
	if err != nil {
		t.Fatalf("BuatProduk 2: %v", err)
	}
	if p2.SKU != "KP-BLK-02" {
		t.Errorf("Expected SKU KP-BLK-02, got %s", p2.SKU)
	}

	// Different warna restarts the sequence
	p3, err := d.catalog.BuatProduk(ctx, ProdukRequest{
		Nama: "Kemeja Oxford", KategoriKode: "KP", WarnaKode: "WHT", Ukuran: "M",
	}, "admin")
	if err != nil {
		t.Fatalf("BuatProduk 3: %v", err)
	}
	if p3.SKU != "KP-WHT-01" {
		t.Errorf("Expected SKU KP-WHT-01, got %s", p3.SKU)
	}
}

func TestBuatProdukValidation(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	if err := d.catalog.SeedWarna(ctx); err != nil {
		t.Fatalf("SeedWarna: %v", err)
	}

	_, err := d.catalog.BuatProduk(ctx, ProdukRequest{
		Nama: "X", KategoriKode: "ZZ", WarnaKode: "BLK", Ukuran: "M",
	}, "admin")
	assertKind(t, err, KindNotFound)

	if _, err := d.catalog.BuatKategori(ctx, "Kemeja Pria", "admin"); err != nil {
		t.Fatalf("BuatKategori: %v", err)
	}
	_, err = d.catalog.BuatProduk(ctx, ProdukRequest{
		Nama: "X", KategoriKode: "KP", WarnaKode: "XXX", Ukuran: "M",
	}, "admin")
	assertKind(t, err, KindNotFound)
}

func TestUbahProdukSKUTetap(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	if err := d.catalog.SeedWarna(ctx); err != nil {
		t.Fatalf("SeedWarna: %v", err)
	}
	if _, err := d.catalog.BuatKategori(ctx, "Kemeja Pria", "admin"); err != nil {
		t.Fatalf("BuatKategori: %v", err)
	}
	p, err := d.catalog.BuatProduk(ctx, ProdukRequest{
		Nama: "Kemeja Oxford", KategoriKode: "KP", WarnaKode: "BLK", Ukuran: "M",
	}, "admin")
	if err != nil {
		t.Fatalf("BuatProduk: %v", err)
	}

	updated, err := d.catalog.UbahProduk(ctx, p.ID, ProdukRequest{
		Nama: "Kemeja Oxford Premium", KategoriKode: "KP", WarnaKode: "WHT", Ukuran: "XL", MinStok: 5,
	}, "admin")
	if err != nil {
		t.Fatalf("UbahProduk: %v", err)
	}
	if updated.SKU != p.SKU {
		t.Errorf("SKU must never change, got %s", updated.SKU)
	}
	if updated.Nama != "Kemeja Oxford Premium" || updated.Ukuran != "XL" || updated.MinStok != 5 {
		t.Errorf("Unexpected update %+v", updated)
	}
}

func TestBuatWarna(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()

	w, err := d.catalog.BuatWarna(ctx, "mrn", "Maroon", "admin")
	if err != nil {
		t.Fatalf("BuatWarna: %v", err)
	}
	if w.Kode != "MRN" {
		t.Errorf("Expected kode uppercased MRN, got %s", w.Kode)
	}

	_, err = d.catalog.BuatWarna(ctx, "MRN", "Maroon Tua", "admin")
	assertKind(t, err, KindDuplicateKey)

	_, err = d.catalog.BuatWarna(ctx, "M", "Terlalu Pendek", "admin")
	assertKind(t, err, KindValidation)

	_, err = d.catalog.BuatWarna(ctx, "MAROON", "Terlalu Panjang", "admin")
	assertKind(t, err, KindValidation)
}

func TestBuatSupplierDanVendorKode(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()

	sup, err := d.catalog.BuatSupplier(ctx, PartnerRequest{Nama: "Textile Mandiri"}, "admin")
	if err != nil {
		t.Fatalf("BuatSupplier: %v", err)
	}
	if sup.Kode != "SUP-TM-01" {
		t.Errorf("Expected SUP-TM-01, got %s", sup.Kode)
	}

	v1, err := d.catalog.BuatVendor(ctx, PartnerRequest{Nama: "Konveksi Jaya"}, "admin")
	if err != nil {
		t.Fatalf("BuatVendor: %v", err)
	}
	if v1.Kode != "VN01" {
		t.Errorf("Expected VN01, got %s", v1.Kode)
	}
	v2, err := d.catalog.BuatVendor(ctx, PartnerRequest{Nama: "Konveksi Dua"}, "admin")
	if err != nil {
		t.Fatalf("BuatVendor 2: %v", err)
	}
	if v2.Kode != "VN02" {
		t.Errorf("Expected VN02, got %s", v2.Kode)
	}
}

func TestSeedWarnaIdempoten(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()

	if err := d.catalog.SeedWarna(ctx); err != nil {
		t.Fatalf("SeedWarna: %v", err)
	}
	if err := d.catalog.SeedWarna(ctx); err != nil {
		t.Fatalf("SeedWarna repeat: %v", err)
	}
	warna, err := d.catalog.ListWarna(ctx)
	if err != nil {
		t.Fatalf("ListWarna: %v", err)
	}
	if len(warna) != len(entity.DefaultWarna) {
		t.Errorf("Expected %d warna, got %d", len(entity.DefaultWarna), len(warna))
	}
}
