package entity

import "gorm.io/gorm"

// AutoMigrate migrates every table owned by the engine.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// master data
		&User{},
		&Supplier{},
		&Vendor{},
		&Kategori{},
		&Warna{},
		&Produk{},

		// bahan baku
		&Roll{},

		// produksi
		&SuratPesanan{},
		&SPRow{},
		&Penerimaan{},
		&PenerimaanItem{},

		// gudang produk
		&StokBatch{},

		// penjualan
		&OrderPenjualan{},
		&OrderItem{},

		// retur
		&ReturCustomer{},
		&ReturVendor{},
		&ReturSupplier{},

		// lain-lain
		&AuditEntry{},
		&CompanyProfile{},
		&LabelConfig{},
	)
}
