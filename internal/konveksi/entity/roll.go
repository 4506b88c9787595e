package entity

import "time"

// RollStatus status roll kain di gudang bahan baku.
type RollStatus string

const (
	RollTersedia          RollStatus = "Tersedia"
	RollTerpakaiSP        RollStatus = "Terpakai SP"
	RollKembaliDariVendor RollStatus = "Kembali dari Vendor"
	RollDiGudangRetur     RollStatus = "Di Gudang Retur"
)

// RollKondisi kondisi fisik kain.
type RollKondisi string

const (
	KondisiBaik  RollKondisi = "Baik"
	KondisiCukup RollKondisi = "Cukup"
	KondisiRusak RollKondisi = "Rusak"
)

// Roll satu roll kain mentah, dilacak per meter dari supplier sampai terpakai.
// SupplierNama is a snapshot taken at intake so printed labels stay accurate.
type Roll struct {
	ID           string      `json:"id" gorm:"primaryKey;size:32"`
	Barcode      string      `json:"barcode" gorm:"size:30;uniqueIndex;not null"` // BB-{supp}-{YYMM}-{urut}
	BarcodeSupp  string      `json:"barcode_supp" gorm:"size:50"`
	Jenis        string      `json:"jenis" gorm:"size:100;not null"`
	SupplierID   string      `json:"supplier_id" gorm:"size:32;not null;index"`
	SupplierNama string      `json:"supplier_nama" gorm:"size:100"`
	Meter        float64     `json:"meter" gorm:"type:decimal(10,2);not null"`
	Kondisi      RollKondisi `json:"kondisi" gorm:"size:10;not null;default:Baik"`
	Status       RollStatus  `json:"status" gorm:"size:20;not null;default:Tersedia;index"`
	SPNo         string      `json:"sp_no" gorm:"size:30;index"`
	Catatan      string      `json:"catatan" gorm:"type:text"`
	TglTerima    time.Time   `json:"tgl_terima" gorm:"not null"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Roll) TableName() string {
	return "nj_gudang_bb"
}
