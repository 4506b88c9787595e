package entity

import "time"

// CompanyProfile profil usaha untuk kop dokumen dan label. Single row.
type CompanyProfile struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	Nama          string    `json:"nama" gorm:"size:100;not null"`
	Sub           string    `json:"sub" gorm:"size:100"`
	Alamat        string    `json:"alamat" gorm:"type:text"`
	Telp          string    `json:"telp" gorm:"size:30"`
	Email         string    `json:"email" gorm:"size:100"`
	LogoObjectKey string    `json:"logo_object_key" gorm:"size:200"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (CompanyProfile) TableName() string {
	return "nj_company_profile"
}

// Label types
const (
	LabelJadi = "jadi"
	LabelBB   = "bb"
)

// LabelConfig konfigurasi cetak label per jenis (jadi / bahan baku).
// Rendering is the presentation layer's job; the engine only stores it.
type LabelConfig struct {
	Jenis      string    `json:"jenis" gorm:"primaryKey;size:10"`
	Lebar      int       `json:"lebar" gorm:"not null;default:58"`
	Tinggi     int       `json:"tinggi" gorm:"not null;default:40"`
	Opsi       []string  `json:"opsi" gorm:"serializer:json;type:jsonb"`
	FontBrand  int       `json:"font_brand" gorm:"not null;default:14"`
	FontDetail int       `json:"font_detail" gorm:"not null;default:10"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (LabelConfig) TableName() string {
	return "nj_label_config"
}
