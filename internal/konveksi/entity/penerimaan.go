package entity

import "time"

// PenerimaanStatus status QC satu penerimaan barang.
type PenerimaanStatus string

const (
	PenerimaanMenungguQC PenerimaanStatus = "Menunggu QC"
	PenerimaanSelesaiQC  PenerimaanStatus = "Selesai QC"
)

// Penerimaan satu kiriman barang jadi dari vendor atas sebuah SP.
type Penerimaan struct {
	ID           string           `json:"id" gorm:"primaryKey;size:32"`
	No           string           `json:"no" gorm:"size:40;uniqueIndex;not null"` // PNR-{spCode}-{urut}
	SPID         string           `json:"sp_id" gorm:"size:32;not null;index"`
	SPNo         string           `json:"sp_no" gorm:"size:30;not null;index"`
	VendorNama   string           `json:"vendor_nama" gorm:"size:100"`
	Items        []PenerimaanItem `json:"items" gorm:"foreignKey:PenerimaanID"`
	TotalDikirim int              `json:"total_dikirim" gorm:"not null;default:0"`
	TotalLolos   int              `json:"total_lolos" gorm:"not null;default:0"`
	TotalGagal   int              `json:"total_gagal" gorm:"not null;default:0"`
	Status       PenerimaanStatus `json:"status" gorm:"size:20;not null;default:Menunggu QC;index"`
	Tgl          time.Time        `json:"tgl" gorm:"not null"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Penerimaan) TableName() string {
	return "nj_penerimaan"
}

// PenerimaanItem satu SKU dalam kiriman. Lolos+Gagal harus == Dikirim
// sebelum QC boleh ditutup; IsBonus menandai SKU di luar baris SP.
type PenerimaanItem struct {
	ID           string `json:"id" gorm:"primaryKey;size:32"`
	PenerimaanID string `json:"penerimaan_id" gorm:"size:32;not null;index"`
	SKU          string `json:"sku" gorm:"size:30;not null"`
	Produk       string `json:"produk" gorm:"size:200"`
	Warna        string `json:"warna" gorm:"size:50"`
	Ukuran       string `json:"ukuran" gorm:"size:10"`
	Dikirim      int    `json:"dikirim" gorm:"not null"`
	Lolos        int    `json:"lolos" gorm:"not null;default:0"`
	Gagal        int    `json:"gagal" gorm:"not null;default:0"`
	Alasan       string `json:"alasan" gorm:"type:text"`
	IsBonus      bool   `json:"is_bonus" gorm:"not null;default:false"`
}

func (PenerimaanItem) TableName() string {
	return "nj_penerimaan_items"
}
