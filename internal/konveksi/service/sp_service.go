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

// SPService state machine surat pesanan produksi:
// Draft -> Dikirim -> {Sebagian, Selesai}. Draft juga bisa dihapus.
type SPService struct {
	sps     *repository.SPRepository
	rolls   *repository.RollRepository
	catalog *repository.CatalogRepository
	audit   *repository.AuditRepository
	db      *gorm.DB
}

func NewSPService(sps *repository.SPRepository, rolls *repository.RollRepository, catalog *repository.CatalogRepository, audit *repository.AuditRepository, db *gorm.DB) *SPService {
	return &SPService{sps: sps, rolls: rolls, catalog: catalog, audit: audit, db: db}
}

type SPRowRequest struct {
	SKU    string `json:"sku" binding:"required"`
	Target int    `json:"target"`
}

type BuatSPRequest struct {
	VendorID string         `json:"vendor_id" binding:"required"`
	Rows     []SPRowRequest `json:"rows" binding:"required"`
	Catatan  string         `json:"catatan"`
}

type EditSPRequest struct {
	Rows    []SPRowRequest `json:"rows" binding:"required"`
	RollIDs []string       `json:"roll_ids"`
	Catatan string         `json:"catatan"`
}

func (s *SPService) List(ctx context.Context, status entity.SPStatus) ([]entity.SuratPesanan, error) {
	return s.sps.List(ctx, status)
}

func (s *SPService) Get(ctx context.Context, id string) (*entity.SuratPesanan, error) {
	sp, err := s.sps.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "surat pesanan", id)
	}
	return sp, nil
}

// buildRows memvalidasi baris dan melengkapi snapshot produk dari katalog.
func (s *SPService) buildRows(ctx context.Context, catalog *repository.CatalogRepository, spID string, rows []SPRowRequest) ([]entity.SPRow, int, error) {
	if len(rows) == 0 {
		return nil, 0, validationf("surat pesanan butuh minimal satu baris produk")
	}
	seen := make(map[string]bool, len(rows))
	out := make([]entity.SPRow, 0, len(rows))
	total := 0
	for _, r := range rows {
		if r.SKU == "" {
			return nil, 0, validationf("sku baris wajib diisi")
		}
		if r.Target <= 0 {
			return nil, 0, validationf("target %s harus lebih dari 0", r.SKU)
		}
		if seen[r.SKU] {
			return nil, 0, validationf("sku %s muncul lebih dari sekali", r.SKU)
		}
		seen[r.SKU] = true

		row := entity.SPRow{
			ID:     uuid.New().String()[:32],
			SPID:   spID,
			SKU:    r.SKU,
			Target: r.Target,
		}
		if p, err := catalog.FindProdukBySKU(ctx, r.SKU); err == nil {
			row.Produk = p.Nama
			row.Warna = p.Warna
			row.Ukuran = p.Ukuran
		}
		out = append(out, row)
		total += r.Target
	}
	return out, total, nil
}

// BuatDraft membuat SP Draft baru dengan nomor SP-{vendorKode}-{YYMMDD}-{urut},
// urutan per vendor per hari.
func (s *SPService) BuatDraft(ctx context.Context, req BuatSPRequest, username string) (*entity.SuratPesanan, error) {
	var sp *entity.SuratPesanan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		catalog := s.catalog.WithTx(tx)
		vendor, err := catalog.FindVendorByID(ctx, req.VendorID)
		if err != nil {
			return asNotFound(err, "vendor", req.VendorID)
		}

		spID := uuid.New().String()[:32]
		rows, total, err := s.buildRows(ctx, catalog, spID, req.Rows)
		if err != nil {
			return err
		}

		now := time.Now()
		sps := s.sps.WithTx(tx)
		prefix := spNoPrefix(vendor.Kode, now)
		last, err := sps.LastNo(ctx, prefix)
		if err != nil {
			return err
		}
		sp = &entity.SuratPesanan{
			ID:          spID,
			No:          fmt.Sprintf("%s%02d", prefix, nextSeq(last)),
			VendorID:    vendor.ID,
			VendorNama:  vendor.Nama,
			VendorKode:  vendor.Kode,
			Rows:        rows,
			TargetTotal: total,
			Status:      entity.SPDraft,
			Catatan:     req.Catatan,
			Tgl:         now,
			RollIDs:     []string{},
		}
		if err := sps.Create(ctx, sp); err != nil {
			return err
		}
		detail := fmt.Sprintf("SP %s (target %d pcs) dibuat untuk %s", sp.No, total, vendor.Nama)
		return s.audit.WithTx(tx).Append(ctx, "Buat SP", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// lockRollsTersedia mengunci dan memvalidasi bahwa semua roll Tersedia.
func lockRollsTersedia(ctx context.Context, rolls *repository.RollRepository, ids []string) ([]*entity.Roll, error) {
	out := make([]*entity.Roll, 0, len(ids))
	for _, id := range ids {
		roll, err := rolls.FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, asNotFound(err, "roll", id)
		}
		if roll.Status != entity.RollTersedia {
			return nil, domainErrf(KindInsufficientRolls, "roll %s berstatus %s, harus Tersedia", roll.Barcode, roll.Status)
		}
		out = append(out, roll)
	}
	return out, nil
}

// KirimSP memasang roll ke SP Draft dan mengirimkannya. Semua roll harus
// Tersedia; SP dan setiap roll diperbarui dalam satu transaksi.
func (s *SPService) KirimSP(ctx context.Context, id string, rollIDs []string, username string) (*entity.SuratPesanan, error) {
	var sp *entity.SuratPesanan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sps := s.sps.WithTx(tx)
		var err error
		sp, err = sps.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "surat pesanan", id)
		}
		if sp.Status != entity.SPDraft {
			return invalidStatef("SP %s berstatus %s, hanya Draft yang bisa dikirim", sp.No, sp.Status)
		}
		if len(rollIDs) == 0 {
			rollIDs = sp.RollIDs
		}
		if len(rollIDs) == 0 {
			return domainErrf(KindInsufficientRolls, "SP %s belum punya roll kain", sp.No)
		}

		rollRepo := s.rolls.WithTx(tx)
		locked, err := lockRollsTersedia(ctx, rollRepo, rollIDs)
		if err != nil {
			return err
		}
		for _, roll := range locked {
			roll.Status = entity.RollTerpakaiSP
			roll.SPNo = sp.No
			if err := rollRepo.Update(ctx, roll); err != nil {
				return err
			}
		}

		sp.Status = entity.SPDikirim
		sp.RollIDs = rollIDs
		if err := sps.Update(ctx, sp); err != nil {
			return err
		}
		detail := fmt.Sprintf("SP %s dikirim ke %s dengan %d roll", sp.No, sp.VendorNama, len(rollIDs))
		return s.audit.WithTx(tx).Append(ctx, "Kirim SP", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// EditDraft mengganti baris dan pilihan roll sebuah SP Draft. Roll lama
// dilepas kembali ke Tersedia sebelum set baru dicatat; status tetap Draft.
func (s *SPService) EditDraft(ctx context.Context, id string, req EditSPRequest, username string) (*entity.SuratPesanan, error) {
	var sp *entity.SuratPesanan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sps := s.sps.WithTx(tx)
		var err error
		sp, err = sps.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "surat pesanan", id)
		}
		if sp.Status != entity.SPDraft {
			return invalidStatef("SP %s berstatus %s, hanya Draft yang bisa diedit", sp.No, sp.Status)
		}

		rollRepo := s.rolls.WithTx(tx)
		if len(sp.RollIDs) > 0 {
			if err := rollRepo.ReleaseBySP(ctx, sp.RollIDs); err != nil {
				return err
			}
		}
		if len(req.RollIDs) > 0 {
			if _, err := lockRollsTersedia(ctx, rollRepo, req.RollIDs); err != nil {
				return err
			}
		}

		rows, total, err := s.buildRows(ctx, s.catalog.WithTx(tx), sp.ID, req.Rows)
		if err != nil {
			return err
		}
		if err := sps.ReplaceRows(ctx, sp.ID, rows); err != nil {
			return err
		}
		sp.Rows = rows
		sp.TargetTotal = total
		sp.RollIDs = req.RollIDs
		sp.Catatan = req.Catatan
		if err := sps.Update(ctx, sp); err != nil {
			return err
		}
		detail := fmt.Sprintf("SP %s diedit (target %d pcs, %d roll)", sp.No, total, len(req.RollIDs))
		return s.audit.WithTx(tx).Append(ctx, "Edit SP", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// HapusDraft menghapus SP Draft dan melepaskan roll yang sempat dipilih.
func (s *SPService) HapusDraft(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		sps := s.sps.WithTx(tx)
		sp, err := sps.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "surat pesanan", id)
		}
		if sp.Status != entity.SPDraft {
			return invalidStatef("SP %s berstatus %s, hanya Draft yang bisa dihapus", sp.No, sp.Status)
		}
		if len(sp.RollIDs) > 0 {
			if err := s.rolls.WithTx(tx).ReleaseBySP(ctx, sp.RollIDs); err != nil {
				return err
			}
		}
		if err := sps.Delete(ctx, sp.ID); err != nil {
			return err
		}
		detail := fmt.Sprintf("Draft SP %s dihapus", sp.No)
		return s.audit.WithTx(tx).Append(ctx, "Hapus SP", detail, username)
	})
}
