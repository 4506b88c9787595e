package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/config"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// Services kumpulan domain service engine.
type Services struct {
	Auth       *AuthService
	User       *UserService
	Catalog    *CatalogService
	Roll       *RollService
	SP         *SPService
	Penerimaan *PenerimaanService
	Order      *OrderService
	Retur      *ReturService
	Report     *ReportService
	Settings   *SettingsService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, rdb, cfg),
		User:       NewUserService(repos.User, repos.Audit, db),
		Catalog:    NewCatalogService(repos.Catalog, repos.Batch, repos.Audit, db),
		Roll:       NewRollService(repos.Roll, repos.Catalog, repos.Retur, repos.Audit, db),
		SP:         NewSPService(repos.SP, repos.Roll, repos.Catalog, repos.Audit, db),
		Penerimaan: NewPenerimaanService(repos.Penerimaan, repos.SP, repos.Batch, repos.Retur, repos.Catalog, repos.Audit, db),
		Order:      NewOrderService(repos.Order, repos.Batch, repos.Catalog, repos.Audit, db),
		Retur:      NewReturService(repos.Retur, repos.Order, repos.Batch, repos.Audit, db),
		Report:     NewReportService(repos.Batch, repos.Order, repos.SP, repos.Roll, repos.Retur),
		Settings:   NewSettingsService(repos.Settings, repos.Audit, db, minioClient, cfg.MinIO.Bucket),
	}
}
