package entity

import "time"

// Supplier sumber kain mentah (bahan baku).
type Supplier struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Kode      string    `json:"kode" gorm:"size:20;uniqueIndex;not null"` // SUP-{INISIAL}-{urut}
	Nama      string    `json:"nama" gorm:"size:100;not null"`
	Kontak    string    `json:"kontak" gorm:"size:50"`
	Alamat    string    `json:"alamat" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "nj_suppliers"
}

// Vendor konveksi luar yang menjahit kain menjadi produk jadi.
type Vendor struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Kode      string    `json:"kode" gorm:"size:20;uniqueIndex;not null"` // VN{urut}
	Nama      string    `json:"nama" gorm:"size:100;not null"`
	Kontak    string    `json:"kontak" gorm:"size:50"`
	Alamat    string    `json:"alamat" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vendor) TableName() string {
	return "nj_vendors"
}

// Kategori kategori produk; kode = inisial nama ("Kemeja Pria" -> "KP").
type Kategori struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Kode      string    `json:"kode" gorm:"size:10;uniqueIndex;not null"`
	Nama      string    `json:"nama" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Kategori) TableName() string {
	return "nj_kategori"
}

// Warna master warna, keyed by kode 3 huruf.
type Warna struct {
	Kode      string    `json:"kode" gorm:"primaryKey;size:10"`
	Nama      string    `json:"nama" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Warna) TableName() string {
	return "nj_warna"
}

// DefaultWarna warna bawaan yang di-seed saat boot pertama.
var DefaultWarna = []Warna{
	{Kode: "BLK", Nama: "Hitam"}, {Kode: "WHT", Nama: "Putih"},
	{Kode: "RED", Nama: "Merah"}, {Kode: "NVY", Nama: "Navy"},
	{Kode: "BLU", Nama: "Biru"}, {Kode: "GRN", Nama: "Hijau"},
	{Kode: "YLW", Nama: "Kuning"}, {Kode: "GRY", Nama: "Abu-abu"},
	{Kode: "BRN", Nama: "Coklat"}, {Kode: "ORG", Nama: "Orange"},
	{Kode: "PNK", Nama: "Pink"}, {Kode: "PRP", Nama: "Ungu"},
}

// Produk katalog produk jadi. SKU = {kategoriKode}-{warnaKode}-{urut}.
type Produk struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	SKU          string    `json:"sku" gorm:"size:30;uniqueIndex;not null"`
	Nama         string    `json:"nama" gorm:"size:200;not null"`
	KategoriKode string    `json:"kategori_kode" gorm:"size:10;not null;index"`
	WarnaKode    string    `json:"warna_kode" gorm:"size:10;not null;index"`
	Warna        string    `json:"warna" gorm:"size:50"`
	Ukuran       string    `json:"ukuran" gorm:"size:10;not null"`
	MinStok      int       `json:"min_stok" gorm:"not null;default:10"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Produk) TableName() string {
	return "nj_produk"
}
