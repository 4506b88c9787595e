package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// CatalogService master data: produk, kategori, warna, supplier, vendor.
// Kode dan SKU di-generate dari nama dan urutan scope masing-masing.
type CatalogService struct {
	catalog *repository.CatalogRepository
	batches *repository.BatchRepository
	audit   *repository.AuditRepository
	db      *gorm.DB
}

func NewCatalogService(catalog *repository.CatalogRepository, batches *repository.BatchRepository, audit *repository.AuditRepository, db *gorm.DB) *CatalogService {
	return &CatalogService{catalog: catalog, batches: batches, audit: audit, db: db}
}

type ProdukRequest struct {
	Nama         string `json:"nama" binding:"required"`
	KategoriKode string `json:"kategori_kode" binding:"required"`
	WarnaKode    string `json:"warna_kode" binding:"required"`
	Ukuran       string `json:"ukuran" binding:"required"`
	MinStok      int    `json:"min_stok"`
}

type PartnerRequest struct {
	Nama   string `json:"nama" binding:"required"`
	Kontak string `json:"kontak"`
	Alamat string `json:"alamat"`
}

// ProdukStok produk plus total sisa seluruh batch-nya, untuk alert
// stok minimum.
type ProdukStok struct {
	entity.Produk
	TotalStok int `json:"total_stok"`
}

func (s *CatalogService) ListProduk(ctx context.Context) ([]ProdukStok, error) {
	produk, err := s.catalog.ListProduk(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProdukStok, 0, len(produk))
	for _, p := range produk {
		total, err := s.batches.StokPerSKU(ctx, p.SKU)
		if err != nil {
			return nil, err
		}
		out = append(out, ProdukStok{Produk: p, TotalStok: total})
	}
	return out, nil
}

// BuatProduk membuat produk dengan SKU {kategori}-{warna}-{urut}, urutan
// per kombinasi kategori+warna.
func (s *CatalogService) BuatProduk(ctx context.Context, req ProdukRequest, username string) (*entity.Produk, error) {
	var produk *entity.Produk
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		warna, err := catalog.FindWarnaByKode(ctx, req.WarnaKode)
		if err != nil {
			return asNotFound(err, "warna", req.WarnaKode)
		}
		if n, err := catalog.CountKategoriByKode(ctx, req.KategoriKode, ""); err != nil {
			return err
		} else if n == 0 {
			return notFoundf("kategori %s tidak ditemukan", req.KategoriKode)
		}

		last, err := catalog.LastSKU(ctx, req.KategoriKode, req.WarnaKode)
		if err != nil {
			return err
		}
		minStok := req.MinStok
		if minStok <= 0 {
			minStok = 10
		}
		produk = &entity.Produk{
			ID:           uuid.New().String()[:32],
			SKU:          formatSKU(req.KategoriKode, req.WarnaKode, nextSeq(last)),
			Nama:         req.Nama,
			KategoriKode: req.KategoriKode,
			WarnaKode:    req.WarnaKode,
			Warna:        warna.Nama,
			Ukuran:       strings.ToUpper(req.Ukuran),
			MinStok:      minStok,
		}
		if err := catalog.CreateProduk(ctx, produk); err != nil {
			return err
		}
		detail := fmt.Sprintf("Produk %s (%s) ditambahkan", produk.SKU, produk.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Buat Produk", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return produk, nil
}

// UbahProduk memperbarui nama/ukuran/min-stok. SKU tidak pernah berubah
// karena sudah tercetak di label dan dokumen.
func (s *CatalogService) UbahProduk(ctx context.Context, id string, req ProdukRequest, username string) (*entity.Produk, error) {
	var produk *entity.Produk
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		var err error
		produk, err = catalog.FindProdukByID(ctx, id)
		if err != nil {
			return asNotFound(err, "produk", id)
		}
		produk.Nama = req.Nama
		if req.Ukuran != "" {
			produk.Ukuran = strings.ToUpper(req.Ukuran)
		}
		if req.MinStok > 0 {
			produk.MinStok = req.MinStok
		}
		if err := catalog.UpdateProduk(ctx, produk); err != nil {
			return err
		}
		detail := fmt.Sprintf("Produk %s diperbarui", produk.SKU)
		return s.audit.WithTx(tx).Append(ctx, "Ubah Produk", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return produk, nil
}

func (s *CatalogService) HapusProduk(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		produk, err := catalog.FindProdukByID(ctx, id)
		if err != nil {
			return asNotFound(err, "produk", id)
		}
		if err := catalog.DeleteProduk(ctx, id); err != nil {
			return err
		}
		detail := fmt.Sprintf("Produk %s dihapus", produk.SKU)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Produk", detail, username)
	})
}

func (s *CatalogService) ListKategori(ctx context.Context) ([]entity.Kategori, error) {
	return s.catalog.ListKategori(ctx)
}

// BuatKategori kode diambil dari inisial nama; tabrakan kode ditolak.
func (s *CatalogService) BuatKategori(ctx context.Context, nama, username string) (*entity.Kategori, error) {
	if strings.TrimSpace(nama) == "" {
		return nil, validationf("nama kategori wajib diisi")
	}
	var k *entity.Kategori
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		kode := kodeKategoriFromNama(nama)
		n, err := catalog.CountKategoriByKode(ctx, kode, "")
		if err != nil {
			return err
		}
		if n > 0 {
			return duplicatef("kode kategori %s sudah dipakai", kode)
		}
		k = &entity.Kategori{ID: uuid.New().String()[:32], Kode: kode, Nama: nama}
		if err := catalog.CreateKategori(ctx, k); err != nil {
			return err
		}
		detail := fmt.Sprintf("Kategori %s (%s) ditambahkan", k.Kode, k.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Buat Kategori", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (s *CatalogService) HapusKategori(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		k, err := catalog.FindKategoriByID(ctx, id)
		if err != nil {
			return asNotFound(err, "kategori", id)
		}
		if err := catalog.DeleteKategori(ctx, id); err != nil {
			return err
		}
		detail := fmt.Sprintf("Kategori %s dihapus", k.Kode)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Kategori", detail, username)
	})
}

func (s *CatalogService) ListWarna(ctx context.Context) ([]entity.Warna, error) {
	return s.catalog.ListWarna(ctx)
}

// BuatWarna kode warna bebas 2-4 huruf, unik.
func (s *CatalogService) BuatWarna(ctx context.Context, kode, nama, username string) (*entity.Warna, error) {
	kode = strings.ToUpper(strings.TrimSpace(kode))
	if len(kode) < 2 || len(kode) > 4 {
		return nil, validationf("kode warna harus 2-4 huruf")
	}
	if strings.TrimSpace(nama) == "" {
		return nil, validationf("nama warna wajib diisi")
	}
	var w *entity.Warna
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		if _, err := catalog.FindWarnaByKode(ctx, kode); err == nil {
			return duplicatef("kode warna %s sudah dipakai", kode)
		}
		w = &entity.Warna{Kode: kode, Nama: nama}
		if err := catalog.CreateWarna(ctx, w); err != nil {
			return err
		}
		detail := fmt.Sprintf("Warna %s (%s) ditambahkan", w.Kode, w.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Buat Warna", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *CatalogService) HapusWarna(ctx context.Context, kode, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		w, err := catalog.FindWarnaByKode(ctx, kode)
		if err != nil {
			return asNotFound(err, "warna", kode)
		}
		if err := catalog.DeleteWarna(ctx, kode); err != nil {
			return err
		}
		detail := fmt.Sprintf("Warna %s dihapus", w.Kode)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Warna", detail, username)
	})
}

func (s *CatalogService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return s.catalog.ListSuppliers(ctx)
}

// BuatSupplier kode SUP-{INISIAL}-{urut}, urutan global.
func (s *CatalogService) BuatSupplier(ctx context.Context, req PartnerRequest, username string) (*entity.Supplier, error) {
	var sup *entity.Supplier
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		n, err := catalog.CountSuppliers(ctx)
		if err != nil {
			return err
		}
		sup = &entity.Supplier{
			ID:     uuid.New().String()[:32],
			Kode:   kodeSupplierFromNama(req.Nama, int(n)+1),
			Nama:   req.Nama,
			Kontak: req.Kontak,
			Alamat: req.Alamat,
		}
		if err := catalog.CreateSupplier(ctx, sup); err != nil {
			return err
		}
		detail := fmt.Sprintf("Supplier %s (%s) ditambahkan", sup.Kode, sup.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Buat Supplier", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *CatalogService) UbahSupplier(ctx context.Context, id string, req PartnerRequest, username string) (*entity.Supplier, error) {
	var sup *entity.Supplier
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		var err error
		sup, err = catalog.FindSupplierByID(ctx, id)
		if err != nil {
			return asNotFound(err, "supplier", id)
		}
		sup.Nama = req.Nama
		sup.Kontak = req.Kontak
		sup.Alamat = req.Alamat
		if err := catalog.UpdateSupplier(ctx, sup); err != nil {
			return err
		}
		detail := fmt.Sprintf("Supplier %s diperbarui", sup.Kode)
		return s.audit.WithTx(tx).Append(ctx, "Ubah Supplier", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *CatalogService) HapusSupplier(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		sup, err := catalog.FindSupplierByID(ctx, id)
		if err != nil {
			return asNotFound(err, "supplier", id)
		}
		if err := catalog.DeleteSupplier(ctx, id); err != nil {
			return err
		}
		detail := fmt.Sprintf("Supplier %s dihapus", sup.Kode)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Supplier", detail, username)
	})
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.catalog.ListVendors(ctx)
}

// BuatVendor kode VN{urut}, urutan global.
func (s *CatalogService) BuatVendor(ctx context.Context, req PartnerRequest, username string) (*entity.Vendor, error) {
	var v *entity.Vendor
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		n, err := catalog.CountVendors(ctx)
		if err != nil {
			return err
		}
		v = &entity.Vendor{
			ID:     uuid.New().String()[:32],
			Kode:   kodeVendor(int(n) + 1),
			Nama:   req.Nama,
			Kontak: req.Kontak,
			Alamat: req.Alamat,
		}
		if err := catalog.CreateVendor(ctx, v); err != nil {
			return err
		}
		detail := fmt.Sprintf("Vendor %s (%s) ditambahkan", v.Kode, v.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Buat Vendor", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *CatalogService) UbahVendor(ctx context.Context, id string, req PartnerRequest, username string) (*entity.Vendor, error) {
	var v *entity.Vendor
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		var err error
		v, err = catalog.FindVendorByID(ctx, id)
		if err != nil {
			return asNotFound(err, "vendor", id)
		}
		v.Nama = req.Nama
		v.Kontak = req.Kontak
		v.Alamat = req.Alamat
		if err := catalog.UpdateVendor(ctx, v); err != nil {
			return err
		}
		detail := fmt.Sprintf("Vendor %s diperbarui", v.Kode)
		return s.audit.WithTx(tx).Append(ctx, "Ubah Vendor", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *CatalogService) HapusVendor(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		v, err := catalog.FindVendorByID(ctx, id)
		if err != nil {
			return asNotFound(err, "vendor", id)
		}
		if err := catalog.DeleteVendor(ctx, id); err != nil {
			return err
		}
		detail := fmt.Sprintf("Vendor %s dihapus", v.Kode)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Vendor", detail, username)
	})
}

// SeedWarna mengisi warna bawaan sekali saat boot pertama.
func (s *CatalogService) SeedWarna(ctx context.Context) error {
	n, err := s.catalog.CountWarna(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, w := range entity.DefaultWarna {
		w.CreatedAt = time.Now()
		if err := s.catalog.CreateWarna(ctx, &w); err != nil {
			return err
		}
	}
	return nil
}
