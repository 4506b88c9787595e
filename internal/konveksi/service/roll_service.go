package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// RollService ledger roll kain mentah: penerimaan dari supplier, retur
// manual, dan resolusi roll yang kembali dari vendor.
type RollService struct {
	rolls   *repository.RollRepository
	catalog *repository.CatalogRepository
	retur   *repository.ReturRepository
	audit   *repository.AuditRepository
	db      *gorm.DB
}

func NewRollService(rolls *repository.RollRepository, catalog *repository.CatalogRepository, retur *repository.ReturRepository, audit *repository.AuditRepository, db *gorm.DB) *RollService {
	return &RollService{rolls: rolls, catalog: catalog, retur: retur, audit: audit, db: db}
}

type TerimaRollRequest struct {
	SupplierID  string  `json:"supplier_id" binding:"required"`
	Jenis       string  `json:"jenis" binding:"required"`
	Meter       float64 `json:"meter"`
	Kondisi     string  `json:"kondisi"`
	BarcodeSupp string  `json:"barcode_supp"`
	Catatan     string  `json:"catatan"`
}

type ResolusiRollRequest struct {
	MeterSisa float64 `json:"meter_sisa"`
	Kondisi   string  `json:"kondisi" binding:"required"`
	Catatan   string  `json:"catatan"`
}

func (s *RollService) List(ctx context.Context, status entity.RollStatus) ([]entity.Roll, error) {
	return s.rolls.List(ctx, status)
}

func (s *RollService) Get(ctx context.Context, id string) (*entity.Roll, error) {
	roll, err := s.rolls.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "roll", id)
	}
	return roll, nil
}

// TerimaRoll mencatat roll baru dengan barcode internal yang di-generate,
// scoped per supplier per bulan.
func (s *RollService) TerimaRoll(ctx context.Context, req TerimaRollRequest, username string) (*entity.Roll, error) {
	if req.Jenis == "" {
		return nil, validationf("jenis kain wajib diisi")
	}
	if req.Meter <= 0 {
		return nil, validationf("meter harus lebih dari 0")
	}
	kondisi := entity.RollKondisi(req.Kondisi)
	if kondisi == "" {
		kondisi = entity.KondisiBaik
	}
	if kondisi != entity.KondisiBaik && kondisi != entity.KondisiCukup && kondisi != entity.KondisiRusak {
		return nil, validationf("kondisi %s tidak dikenal", req.Kondisi)
	}

	var roll *entity.Roll
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rolls := s.rolls.WithTx(tx)
		supplier, err := s.catalog.WithTx(tx).FindSupplierByID(ctx, req.SupplierID)
		if err != nil {
			return asNotFound(err, "supplier", req.SupplierID)
		}

		now := time.Now()
		prefix := rollBarcodePrefix(supplier.Kode, now)
		last, err := rolls.LastBarcode(ctx, prefix)
		if err != nil {
			return err
		}
		roll = &entity.Roll{
			ID:           uuid.New().String()[:32],
			Barcode:      fmt.Sprintf("%s%03d", prefix, nextSeq(last)),
			BarcodeSupp:  req.BarcodeSupp,
			Jenis:        req.Jenis,
			SupplierID:   supplier.ID,
			SupplierNama: supplier.Nama,
			Meter:        req.Meter,
			Kondisi:      kondisi,
			Status:       entity.RollTersedia,
			Catatan:      req.Catatan,
			TglTerima:    now,
		}
		if err := rolls.Create(ctx, roll); err != nil {
			return err
		}
		detail := fmt.Sprintf("Roll %s (%s, %.1fm) diterima dari %s", roll.Barcode, roll.Jenis, roll.Meter, supplier.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Terima Roll", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return roll, nil
}

// HapusRoll menghapus roll; hanya roll Tersedia yang boleh dihapus.
func (s *RollService) HapusRoll(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rolls := s.rolls.WithTx(tx)
		roll, err := rolls.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "roll", id)
		}
		if roll.Status != entity.RollTersedia {
			return invalidStatef("roll %s berstatus %s, hanya roll Tersedia yang bisa dihapus", roll.Barcode, roll.Status)
		}
		if err := rolls.Delete(ctx, id); err != nil {
			return err
		}
		detail := fmt.Sprintf("Roll %s dihapus dari gudang bahan baku", roll.Barcode)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Roll", detail, username)
	})
}

// ReturManual memindahkan roll Tersedia ke gudang retur dan membuka
// retur supplier baru.
func (s *RollService) ReturManual(ctx context.Context, id, alasan, username string) (*entity.ReturSupplier, error) {
	var rs *entity.ReturSupplier
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rolls := s.rolls.WithTx(tx)
		roll, err := rolls.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "roll", id)
		}
		if roll.Status != entity.RollTersedia {
			return invalidStatef("roll %s berstatus %s, retur manual hanya untuk roll Tersedia", roll.Barcode, roll.Status)
		}
		roll.Status = entity.RollDiGudangRetur
		if err := rolls.Update(ctx, roll); err != nil {
			return err
		}
		rs = &entity.ReturSupplier{
			ID:           uuid.New().String()[:32],
			Barcode:      roll.Barcode,
			Jenis:        roll.Jenis,
			SupplierNama: roll.SupplierNama,
			Meter:        roll.Meter,
			Kondisi:      roll.Kondisi,
			Alasan:       alasan,
			Sumber:       entity.SumberManual,
			Status:       entity.ReturSuppMenungguKirim,
			Tgl:          time.Now(),
		}
		if err := s.retur.WithTx(tx).CreateSupplier(ctx, rs); err != nil {
			return err
		}
		detail := fmt.Sprintf("Roll %s masuk gudang retur, retur ke %s dibuka", roll.Barcode, roll.SupplierNama)
		return s.audit.WithTx(tx).Append(ctx, "Retur Roll Manual", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// TandaiKembali mencatat roll yang dikembalikan vendor dan sedang dalam
// perjalanan ke gudang.
func (s *RollService) TandaiKembali(ctx context.Context, id, username string) (*entity.Roll, error) {
	var roll *entity.Roll
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rolls := s.rolls.WithTx(tx)
		var err error
		roll, err = rolls.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "roll", id)
		}
		if roll.Status != entity.RollTerpakaiSP {
			return invalidStatef("roll %s berstatus %s, bukan Terpakai SP", roll.Barcode, roll.Status)
		}
		roll.Status = entity.RollKembaliDariVendor
		if err := rolls.Update(ctx, roll); err != nil {
			return err
		}
		detail := fmt.Sprintf("Roll %s dikembalikan vendor dari %s", roll.Barcode, roll.SPNo)
		return s.audit.WithTx(tx).Append(ctx, "Roll Kembali dari Vendor", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return roll, nil
}

// Resolusi menyelesaikan roll yang kembali dari vendor. Kondisi Baik
// mengembalikan roll ke Tersedia dengan sisa meter baru dan lepas dari SP;
// kondisi Rusak memindahkannya ke gudang retur plus retur supplier otomatis.
func (s *RollService) Resolusi(ctx context.Context, id string, req ResolusiRollRequest, username string) (*entity.Roll, error) {
	kondisi := entity.RollKondisi(req.Kondisi)
	if kondisi != entity.KondisiBaik && kondisi != entity.KondisiRusak {
		return nil, validationf("kondisi resolusi harus Baik atau Rusak")
	}
	if kondisi == entity.KondisiBaik && req.MeterSisa <= 0 {
		return nil, validationf("meter sisa harus lebih dari 0")
	}

	var roll *entity.Roll
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rolls := s.rolls.WithTx(tx)
		var err error
		roll, err = rolls.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "roll", id)
		}
		if roll.Status != entity.RollTerpakaiSP && roll.Status != entity.RollKembaliDariVendor {
			return invalidStatef("roll %s berstatus %s, tidak sedang di vendor", roll.Barcode, roll.Status)
		}

		spNo := roll.SPNo
		if kondisi == entity.KondisiBaik {
			roll.Status = entity.RollTersedia
			roll.Meter = req.MeterSisa
			roll.SPNo = ""
			roll.Kondisi = entity.KondisiBaik
			if req.Catatan != "" {
				roll.Catatan = req.Catatan
			}
			if err := rolls.Update(ctx, roll); err != nil {
				return err
			}
			detail := fmt.Sprintf("Roll %s kembali Tersedia (sisa %.1fm) dari %s", roll.Barcode, roll.Meter, spNo)
			return s.audit.WithTx(tx).Append(ctx, "Resolusi Roll", detail, username)
		}

		roll.Status = entity.RollDiGudangRetur
		roll.Kondisi = entity.KondisiRusak
		if req.MeterSisa > 0 {
			roll.Meter = req.MeterSisa
		}
		if req.Catatan != "" {
			roll.Catatan = req.Catatan
		}
		if err := rolls.Update(ctx, roll); err != nil {
			return err
		}
		rs := &entity.ReturSupplier{
			ID:           uuid.New().String()[:32],
			Barcode:      roll.Barcode,
			Jenis:        roll.Jenis,
			SupplierNama: roll.SupplierNama,
			Meter:        roll.Meter,
			Kondisi:      entity.KondisiRusak,
			Alasan:       req.Catatan,
			Sumber:       entity.SumberOtomatisDariVendor,
			Status:       entity.ReturSuppMenungguKirim,
			Tgl:          time.Now(),
		}
		if err := s.retur.WithTx(tx).CreateSupplier(ctx, rs); err != nil {
			return err
		}
		detail := fmt.Sprintf("Roll %s rusak dari %s, retur ke %s dibuka", roll.Barcode, spNo, roll.SupplierNama)
		return s.audit.WithTx(tx).Append(ctx, "Resolusi Roll", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return roll, nil
}
