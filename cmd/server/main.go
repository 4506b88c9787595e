package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nudiejuice2-create/nudie-juice/internal/config"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/handler"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/service"
	"github.com/nudiejuice2-create/nudie-juice/internal/middleware"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting nudie-juice service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	minioClient, err := initMinIO(cfg.MinIO)
	if err != nil {
		zapLogger.Warn("MinIO unavailable, logo upload disabled", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, rdb, minioClient, cfg)

	ctx := context.Background()
	if err := services.User.SeedSuperadmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		zapLogger.Fatal("Seed superadmin failed", zap.Error(err))
	}
	if err := services.Catalog.SeedWarna(ctx); err != nil {
		zapLogger.Fatal("Seed warna failed", zap.Error(err))
	}

	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(cfg config.MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint not configured")
	}
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.POST("/auth/logout", h.Auth.Logout)

			users := authorized.Group("/users")
			users.Use(middleware.RequireRole(entity.RoleSuperadmin))
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			produk := authorized.Group("/produk")
			{
				produk.GET("", h.Catalog.ListProduk)
				produk.POST("", h.Catalog.CreateProduk)
				produk.PUT("/:id", h.Catalog.UpdateProduk)
				produk.DELETE("/:id", h.Catalog.DeleteProduk)
			}

			kategori := authorized.Group("/kategori")
			{
				kategori.GET("", h.Catalog.ListKategori)
				kategori.POST("", h.Catalog.CreateKategori)
				kategori.DELETE("/:id", h.Catalog.DeleteKategori)
			}

			warna := authorized.Group("/warna")
			{
				warna.GET("", h.Catalog.ListWarna)
				warna.POST("", h.Catalog.CreateWarna)
				warna.DELETE("/:kode", h.Catalog.DeleteWarna)
			}

			suppliers := authorized.Group("/suppliers")
			{
				suppliers.GET("", h.Catalog.ListSuppliers)
				suppliers.POST("", h.Catalog.CreateSupplier)
				suppliers.PUT("/:id", h.Catalog.UpdateSupplier)
				suppliers.DELETE("/:id", h.Catalog.DeleteSupplier)
			}

			vendors := authorized.Group("/vendors")
			{
				vendors.GET("", h.Catalog.ListVendors)
				vendors.POST("", h.Catalog.CreateVendor)
				vendors.PUT("/:id", h.Catalog.UpdateVendor)
				vendors.DELETE("/:id", h.Catalog.DeleteVendor)
			}

			rolls := authorized.Group("/rolls")
			{
				rolls.GET("", h.Roll.List)
				rolls.GET("/:id", h.Roll.Get)
				rolls.POST("", h.Roll.Create)
				rolls.DELETE("/:id", h.Roll.Delete)
				rolls.POST("/:id/retur", h.Roll.ReturManual)
				rolls.POST("/:id/kembali", h.Roll.TandaiKembali)
				rolls.POST("/:id/resolusi", h.Roll.Resolusi)
			}

			sp := authorized.Group("/sp")
			{
				sp.GET("", h.SP.List)
				sp.GET("/:id", h.SP.Get)
				sp.POST("", h.SP.Create)
				sp.PUT("/:id", h.SP.Update)
				sp.POST("/:id/kirim", h.SP.Kirim)
				sp.DELETE("/:id", h.SP.Delete)
			}

			penerimaan := authorized.Group("/penerimaan")
			{
				penerimaan.GET("", h.Penerimaan.List)
				penerimaan.GET("/:id", h.Penerimaan.Get)
				penerimaan.POST("", h.Penerimaan.Create)
				penerimaan.POST("/:id/qc", h.Penerimaan.SimpanQC)
			}

			orders := authorized.Group("/orders")
			{
				orders.GET("", h.Order.List)
				orders.GET("/:id", h.Order.Get)
				orders.POST("", h.Order.Create)
				orders.PUT("/:id", h.Order.Update)
				orders.POST("/:id/selesai", h.Order.Selesaikan)
				orders.POST("/:id/batal", h.Order.Batalkan)
				orders.DELETE("/:id", h.Order.Delete)
			}

			retur := authorized.Group("/retur")
			{
				retur.GET("/customer", h.Retur.ListCustomer)
				retur.POST("/customer", h.Retur.CreateCustomer)
				retur.POST("/customer/:id/musnahkan", h.Retur.Musnahkan)
				retur.POST("/customer/:id/tukar", h.Retur.Tukar)
				retur.POST("/customer/:id/ke-vendor", h.Retur.KeVendor)

				retur.GET("/vendor", h.Retur.ListVendor)
				retur.POST("/vendor/:id/kirim", h.Retur.KirimVendor)
				retur.POST("/vendor/:id/masuk-gudang", h.Retur.MasukGudang)
				retur.POST("/vendor/:id/refund", h.Retur.Refund)

				retur.GET("/supplier", h.Retur.ListSupplier)
				retur.POST("/supplier/:id/kirim", h.Retur.KirimSupplier)
				retur.POST("/supplier/:id/pengganti", h.Retur.Pengganti)
				retur.POST("/supplier/:id/kerugian", h.Retur.Kerugian)
			}

			authorized.GET("/dashboard", h.Report.Dashboard)
			authorized.GET("/laporan/export", h.Report.Export)
			authorized.GET("/audit", h.Settings.ListAudit)

			settings := authorized.Group("/settings")
			{
				settings.GET("/profile", h.Settings.GetProfile)
				settings.PUT("/profile", h.Settings.UpdateProfile)
				settings.POST("/logo", h.Settings.UploadLogo)
				settings.GET("/label/:jenis", h.Settings.GetLabelConfig)
				settings.PUT("/label/:jenis", h.Settings.SaveLabelConfig)
			}
		}
	}
}
