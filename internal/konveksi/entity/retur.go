package entity

import "time"

// ReturCustomerStatus resolusi retur dari customer; tepat satu jalur
// terminal dipilih sekali dan tidak bisa dibatalkan.
type ReturCustomerStatus string

const (
	ReturCustMenunggu        ReturCustomerStatus = "Menunggu Pengecekan"
	ReturCustDimusnahkan     ReturCustomerStatus = "Dimusnahkan"
	ReturCustSelesaiDitukar  ReturCustomerStatus = "Selesai Ditukar"
	ReturCustDikirimKeVendor ReturCustomerStatus = "Dikirim ke Vendor"
)

// ReturCustomer barang kembali dari customer atas order yang sudah Selesai.
type ReturCustomer struct {
	ID        string              `json:"id" gorm:"primaryKey;size:32"`
	OrderNo   string              `json:"order_no" gorm:"size:30;not null;index"`
	SKU       string              `json:"sku" gorm:"size:30;not null"`
	Produk    string              `json:"produk" gorm:"size:200"`
	Warna     string              `json:"warna" gorm:"size:50"`
	Ukuran    string              `json:"ukuran" gorm:"size:10"`
	BatchID   string              `json:"batch_id" gorm:"size:32;not null"`
	SPNo      string              `json:"sp_no" gorm:"size:30"`
	Vendor    string              `json:"vendor" gorm:"size:100"`
	Qty       int                 `json:"qty" gorm:"not null"`
	Alasan    string              `json:"alasan" gorm:"type:text;not null"`
	Status    ReturCustomerStatus `json:"status" gorm:"size:30;not null;default:Menunggu Pengecekan;index"`
	Tgl       time.Time           `json:"tgl" gorm:"not null"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (ReturCustomer) TableName() string {
	return "nj_retur_customer"
}

// ReturVendorStatus alur dua langkah: Menunggu -> Di Vendor, lalu
// Masuk Gudang (buat batch baru) atau Uang Dikembalikan.
type ReturVendorStatus string

const (
	ReturVendorMenunggu    ReturVendorStatus = "Menunggu"
	ReturVendorDiVendor    ReturVendorStatus = "Di Vendor"
	ReturVendorMasukGudang ReturVendorStatus = "Masuk Gudang"
	ReturVendorRefund      ReturVendorStatus = "Uang Dikembalikan"
)

// ReturVendor sources
const (
	SumberQCGagal       = "QC Gagal"
	SumberReturCustomer = "Retur Customer"
)

// ReturVendor barang gagal QC atau retur customer yang dikirim balik ke vendor.
type ReturVendor struct {
	ID         string            `json:"id" gorm:"primaryKey;size:32"`
	SKU        string            `json:"sku" gorm:"size:30;not null"`
	Produk     string            `json:"produk" gorm:"size:200"`
	Warna      string            `json:"warna" gorm:"size:50"`
	Ukuran     string            `json:"ukuran" gorm:"size:10"`
	VendorNama string            `json:"vendor_nama" gorm:"size:100"`
	SPNo       string            `json:"sp_no" gorm:"size:30;index"`
	Qty        int               `json:"qty" gorm:"not null"`
	Alasan     string            `json:"alasan" gorm:"type:text"`
	Sumber     string            `json:"sumber" gorm:"size:30;not null"`
	Status     ReturVendorStatus `json:"status" gorm:"size:30;not null;default:Menunggu;index"`
	Tgl        time.Time         `json:"tgl" gorm:"not null"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (ReturVendor) TableName() string {
	return "nj_retur_vendor"
}

// ReturSupplierStatus alur linear dengan satu cabang setelah Sudah Dikirim:
// Pengganti Diterima atau Kerugian (keduanya terminal).
type ReturSupplierStatus string

const (
	ReturSuppMenungguKirim     ReturSupplierStatus = "Menunggu Kirim"
	ReturSuppSudahDikirim      ReturSupplierStatus = "Sudah Dikirim"
	ReturSuppPenggantiDiterima ReturSupplierStatus = "Pengganti Diterima"
	ReturSuppKerugian          ReturSupplierStatus = "Kerugian"
)

// ReturSupplier sources
const (
	SumberManual             = "Manual"
	SumberOtomatisDariVendor = "Otomatis dari Vendor"
)

// ReturSupplier roll kain rusak yang dikembalikan ke supplier.
type ReturSupplier struct {
	ID           string              `json:"id" gorm:"primaryKey;size:32"`
	Barcode      string              `json:"barcode" gorm:"size:30;not null;index"`
	Jenis        string              `json:"jenis" gorm:"size:100"`
	SupplierNama string              `json:"supplier_nama" gorm:"size:100"`
	Meter        float64             `json:"meter" gorm:"type:decimal(10,2);not null"`
	Kondisi      RollKondisi         `json:"kondisi" gorm:"size:10"`
	Alasan       string              `json:"alasan" gorm:"type:text"`
	Sumber       string              `json:"sumber" gorm:"size:30;not null"`
	Status       ReturSupplierStatus `json:"status" gorm:"size:30;not null;default:Menunggu Kirim;index"`
	Tgl          time.Time           `json:"tgl" gorm:"not null"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (ReturSupplier) TableName() string {
	return "nj_retur_supplier"
}
