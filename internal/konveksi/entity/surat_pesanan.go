package entity

import "time"

// SPStatus status surat pesanan produksi.
type SPStatus string

const (
	SPDraft    SPStatus = "Draft"
	SPDikirim  SPStatus = "Dikirim"
	SPSebagian SPStatus = "Sebagian"
	SPSelesai  SPStatus = "Selesai"
)

// SuratPesanan purchase order produksi ke vendor konveksi.
// VendorNama/VendorKode are creation-time snapshots; the roll set is tracked
// on the rolls themselves (Roll.SPNo) and mirrored here as RollIDs.
type SuratPesanan struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	No          string    `json:"no" gorm:"size:30;uniqueIndex;not null"` // SP-{vendorKode}-{YYMMDD}-{urut}
	VendorID    string    `json:"vendor_id" gorm:"size:32;not null;index"`
	VendorNama  string    `json:"vendor_nama" gorm:"size:100"`
	VendorKode  string    `json:"vendor_kode" gorm:"size:20"`
	Rows        []SPRow   `json:"rows" gorm:"foreignKey:SPID"`
	TargetTotal int       `json:"target_total" gorm:"not null;default:0"`
	Diterima    int       `json:"diterima" gorm:"not null;default:0"`
	Status      SPStatus  `json:"status" gorm:"size:20;not null;default:Draft;index"`
	Catatan     string    `json:"catatan" gorm:"type:text"`
	Tgl         time.Time `json:"tgl" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	RollIDs []string `json:"roll_ids" gorm:"serializer:json;type:jsonb"`
}

func (SuratPesanan) TableName() string {
	return "nj_surat_pesanan"
}

// SPRow satu baris target produksi dalam SP. SKU unik per SP.
type SPRow struct {
	ID     string `json:"id" gorm:"primaryKey;size:32"`
	SPID   string `json:"sp_id" gorm:"size:32;not null;index:idx_sp_row_sku,unique"`
	SKU    string `json:"sku" gorm:"size:30;not null;index:idx_sp_row_sku,unique"`
	Produk string `json:"produk" gorm:"size:200"`
	Warna  string `json:"warna" gorm:"size:50"`
	Ukuran string `json:"ukuran" gorm:"size:10"`
	Target int    `json:"target" gorm:"not null"`
}

func (SPRow) TableName() string {
	return "nj_sp_rows"
}
