package entity

import "time"

// StokBatch stok barang jadi per batch hasil QC lolos (atau retur vendor
// yang masuk gudang). Masuk is immutable; only Sisa moves, and it must
// stay within [0, Masuk].
type StokBatch struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	SKU        string    `json:"sku" gorm:"size:30;not null;index"`
	Produk     string    `json:"produk" gorm:"size:200"`
	Warna      string    `json:"warna" gorm:"size:50"`
	Ukuran     string    `json:"ukuran" gorm:"size:10"`
	SPNo       string    `json:"sp_no" gorm:"size:30;index"`
	VendorNama string    `json:"vendor_nama" gorm:"size:100"`
	Masuk      int       `json:"masuk" gorm:"not null"`
	Sisa       int       `json:"sisa" gorm:"not null"`
	PNRNo      string    `json:"pnr_no" gorm:"size:40"`
	Tgl        time.Time `json:"tgl" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (StokBatch) TableName() string {
	return "nj_stok_batch"
}
