package repository

import (
	"context"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"gorm.io/gorm"
)

// CatalogRepository master data: supplier, vendor, kategori, warna, produk.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) WithTx(tx *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: tx}
}

// --- Supplier ---

func (r *CatalogRepository) CreateSupplier(ctx context.Context, s *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) FindSupplierByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *CatalogRepository) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var items []entity.Supplier
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) UpdateSupplier(ctx context.Context, s *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *CatalogRepository) DeleteSupplier(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Supplier{}, "id = ?", id).Error
}

func (r *CatalogRepository) CountSuppliers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Supplier{}).Count(&n).Error
	return n, err
}

// --- Vendor ---

func (r *CatalogRepository) CreateVendor(ctx context.Context, v *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *CatalogRepository) FindVendorByID(ctx context.Context, id string) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *CatalogRepository) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	var items []entity.Vendor
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) UpdateVendor(ctx context.Context, v *entity.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *CatalogRepository) DeleteVendor(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Vendor{}, "id = ?", id).Error
}

func (r *CatalogRepository) CountVendors(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Vendor{}).Count(&n).Error
	return n, err
}

// --- Kategori ---

func (r *CatalogRepository) CreateKategori(ctx context.Context, k *entity.Kategori) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *CatalogRepository) FindKategoriByID(ctx context.Context, id string) (*entity.Kategori, error) {
	var k entity.Kategori
	if err := r.db.WithContext(ctx).First(&k, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &k, nil
}

func (r *CatalogRepository) ListKategori(ctx context.Context) ([]entity.Kategori, error) {
	var items []entity.Kategori
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) UpdateKategori(ctx context.Context, k *entity.Kategori) error {
	return r.db.WithContext(ctx).Save(k).Error
}

func (r *CatalogRepository) DeleteKategori(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Kategori{}, "id = ?", id).Error
}

func (r *CatalogRepository) CountKategoriByKode(ctx context.Context, kode, excludeID string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&entity.Kategori{}).Where("kode = ?", kode)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}

// --- Warna ---

func (r *CatalogRepository) CreateWarna(ctx context.Context, w *entity.Warna) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *CatalogRepository) FindWarnaByKode(ctx context.Context, kode string) (*entity.Warna, error) {
	var w entity.Warna
	if err := r.db.WithContext(ctx).First(&w, "kode = ?", kode).Error; err != nil {
		return nil, translate(err)
	}
	return &w, nil
}

func (r *CatalogRepository) ListWarna(ctx context.Context) ([]entity.Warna, error) {
	var items []entity.Warna
	err := r.db.WithContext(ctx).Order("kode ASC").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) UpdateWarna(ctx context.Context, w *entity.Warna) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *CatalogRepository) DeleteWarna(ctx context.Context, kode string) error {
	return r.db.WithContext(ctx).Delete(&entity.Warna{}, "kode = ?", kode).Error
}

func (r *CatalogRepository) CountWarna(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Warna{}).Count(&n).Error
	return n, err
}

// --- Produk ---

func (r *CatalogRepository) CreateProduk(ctx context.Context, p *entity.Produk) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogRepository) FindProdukByID(ctx context.Context, id string) (*entity.Produk, error) {
	var p entity.Produk
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *CatalogRepository) FindProdukBySKU(ctx context.Context, sku string) (*entity.Produk, error) {
	var p entity.Produk
	if err := r.db.WithContext(ctx).First(&p, "sku = ?", sku).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *CatalogRepository) ListProduk(ctx context.Context) ([]entity.Produk, error) {
	var items []entity.Produk
	err := r.db.WithContext(ctx).Order("sku ASC").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) UpdateProduk(ctx context.Context, p *entity.Produk) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *CatalogRepository) DeleteProduk(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Produk{}, "id = ?", id).Error
}

// LastSKU returns the highest existing SKU for one kategori+warna scope,
// e.g. "KP-BLK-03", or "" when none exist yet.
func (r *CatalogRepository) LastSKU(ctx context.Context, kategoriKode, warnaKode string) (string, error) {
	var p entity.Produk
	err := r.db.WithContext(ctx).
		Where("kategori_kode = ? AND warna_kode = ?", kategoriKode, warnaKode).
		Order("sku DESC").
		First(&p).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return p.SKU, nil
}
