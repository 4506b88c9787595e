package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// SettingsService profil usaha dan konfigurasi label cetak. Logo
// perusahaan disimpan di MinIO, database hanya memegang object key-nya.
type SettingsService struct {
	settings    *repository.SettingsRepository
	audit       *repository.AuditRepository
	db          *gorm.DB
	minioClient *minio.Client
	bucketName  string
}

func NewSettingsService(settings *repository.SettingsRepository, audit *repository.AuditRepository, db *gorm.DB, minioClient *minio.Client, bucketName string) *SettingsService {
	return &SettingsService{settings: settings, audit: audit, db: db, minioClient: minioClient, bucketName: bucketName}
}

type ProfileRequest struct {
	Nama   string `json:"nama" binding:"required"`
	Sub    string `json:"sub"`
	Alamat string `json:"alamat"`
	Telp   string `json:"telp"`
	Email  string `json:"email"`
}

type LabelConfigRequest struct {
	Lebar      int      `json:"lebar"`
	Tinggi     int      `json:"tinggi"`
	Opsi       []string `json:"opsi"`
	FontBrand  int      `json:"font_brand"`
	FontDetail int      `json:"font_detail"`
}

func (s *SettingsService) GetProfile(ctx context.Context) (*entity.CompanyProfile, error) {
	p, err := s.settings.GetProfile(ctx)
	if err != nil {
		return nil, asNotFound(err, "profil", "1")
	}
	return p, nil
}

// UpdateProfile menyimpan profil usaha (baris tunggal, upsert).
func (s *SettingsService) UpdateProfile(ctx context.Context, req ProfileRequest, username string) (*entity.CompanyProfile, error) {
	var p *entity.CompanyProfile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		settings := s.settings.WithTx(tx)
		existing, err := settings.GetProfile(ctx)
		if err == nil {
			p = existing
		} else {
			p = &entity.CompanyProfile{ID: 1}
		}
		p.Nama = req.Nama
		p.Sub = req.Sub
		p.Alamat = req.Alamat
		p.Telp = req.Telp
		p.Email = req.Email
		if err := settings.SaveProfile(ctx, p); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Append(ctx, "Ubah Profil", "Profil usaha diperbarui", username)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UploadLogo mengunggah logo ke MinIO dan menyimpan object key-nya di
// profil. Logo lama tidak dihapus; key baru menggantikannya.
func (s *SettingsService) UploadLogo(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType, username string) (*entity.CompanyProfile, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("object storage belum dikonfigurasi")
	}
	objectName := fmt.Sprintf("logo/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	var p *entity.CompanyProfile
	err = s.db.Transaction(func(tx *gorm.DB) error {
		settings := s.settings.WithTx(tx)
		existing, err := settings.GetProfile(ctx)
		if err == nil {
			p = existing
		} else {
			p = &entity.CompanyProfile{ID: 1}
		}
		p.LogoObjectKey = objectName
		if err := settings.SaveProfile(ctx, p); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Append(ctx, "Upload Logo", "Logo perusahaan diganti", username)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetLabelConfig konfigurasi label per jenis; default dipakai bila
// belum pernah disimpan.
func (s *SettingsService) GetLabelConfig(ctx context.Context, jenis string) (*entity.LabelConfig, error) {
	if jenis != entity.LabelJadi && jenis != entity.LabelBB {
		return nil, validationf("jenis label %s tidak dikenal", jenis)
	}
	lc, err := s.settings.GetLabelConfig(ctx, jenis)
	if err == nil {
		return lc, nil
	}
	return &entity.LabelConfig{
		Jenis:      jenis,
		Lebar:      58,
		Tinggi:     40,
		Opsi:       []string{},
		FontBrand:  14,
		FontDetail: 10,
	}, nil
}

func (s *SettingsService) SaveLabelConfig(ctx context.Context, jenis string, req LabelConfigRequest, username string) (*entity.LabelConfig, error) {
	if jenis != entity.LabelJadi && jenis != entity.LabelBB {
		return nil, validationf("jenis label %s tidak dikenal", jenis)
	}
	if req.Lebar <= 0 || req.Tinggi <= 0 {
		return nil, validationf("ukuran label harus lebih dari 0")
	}
	lc := &entity.LabelConfig{
		Jenis:      jenis,
		Lebar:      req.Lebar,
		Tinggi:     req.Tinggi,
		Opsi:       req.Opsi,
		FontBrand:  req.FontBrand,
		FontDetail: req.FontDetail,
	}
	if lc.Opsi == nil {
		lc.Opsi = []string{}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.settings.WithTx(tx).SaveLabelConfig(ctx, lc); err != nil {
			return err
		}
		detail := fmt.Sprintf("Konfigurasi label %s diperbarui", jenis)
		return s.audit.WithTx(tx).Append(ctx, "Ubah Label", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return lc, nil
}

// ListAudit riwayat aktivitas, terbaru duluan.
func (s *SettingsService) ListAudit(ctx context.Context, limit, offset int) ([]entity.AuditEntry, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.audit.List(ctx, limit, offset)
}
