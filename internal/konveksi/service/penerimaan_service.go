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

// PenerimaanService pipeline dua fase: catat kiriman vendor, lalu QC.
// QC lolos menjadi batch stok baru, QC gagal menjadi retur vendor.
type PenerimaanService struct {
	penerimaan *repository.PenerimaanRepository
	sps        *repository.SPRepository
	batches    *repository.BatchRepository
	retur      *repository.ReturRepository
	catalog    *repository.CatalogRepository
	audit      *repository.AuditRepository
	db         *gorm.DB
}

func NewPenerimaanService(penerimaan *repository.PenerimaanRepository, sps *repository.SPRepository, batches *repository.BatchRepository, retur *repository.ReturRepository, catalog *repository.CatalogRepository, audit *repository.AuditRepository, db *gorm.DB) *PenerimaanService {
	return &PenerimaanService{penerimaan: penerimaan, sps: sps, batches: batches, retur: retur, catalog: catalog, audit: audit, db: db}
}

type PenerimaanItemRequest struct {
	SKU     string `json:"sku" binding:"required"`
	Dikirim int    `json:"dikirim"`
	IsBonus bool   `json:"is_bonus"`
}

type TerimaBarangRequest struct {
	SPID  string                  `json:"sp_id" binding:"required"`
	Items []PenerimaanItemRequest `json:"items" binding:"required"`
}

type QCResultRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Lolos  int    `json:"lolos"`
	Gagal  int    `json:"gagal"`
	Alasan string `json:"alasan"`
}

func (s *PenerimaanService) List(ctx context.Context, status entity.PenerimaanStatus) ([]entity.Penerimaan, error) {
	return s.penerimaan.List(ctx, status)
}

func (s *PenerimaanService) Get(ctx context.Context, id string) (*entity.Penerimaan, error) {
	pnr, err := s.penerimaan.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "penerimaan", id)
	}
	return pnr, nil
}

// hitungStatusSP aturan tiga arah yang sudah dikoreksi: belum ada barang
// berarti Dikirim, sebagian target berarti Sebagian, capai target Selesai.
func hitungStatusSP(diterima, target int) entity.SPStatus {
	switch {
	case diterima <= 0:
		return entity.SPDikirim
	case diterima < target:
		return entity.SPSebagian
	default:
		return entity.SPSelesai
	}
}

// TerimaBarang fase 1: mencatat kiriman dari vendor atas SP yang sudah
// Dikirim/Sebagian. Item bonus (di luar baris SP) ditandai IsBonus.
// Menambah SP.Diterima dan menghitung ulang status SP.
func (s *PenerimaanService) TerimaBarang(ctx context.Context, req TerimaBarangRequest, username string) (*entity.Penerimaan, error) {
	if len(req.Items) == 0 {
		return nil, validationf("penerimaan butuh minimal satu item")
	}
	var pnr *entity.Penerimaan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sps := s.sps.WithTx(tx)
		sp, err := sps.FindByIDForUpdate(ctx, req.SPID)
		if err != nil {
			return asNotFound(err, "surat pesanan", req.SPID)
		}
		if sp.Status != entity.SPDikirim && sp.Status != entity.SPSebagian {
			return invalidStatef("SP %s berstatus %s, belum bisa menerima barang", sp.No, sp.Status)
		}

		spRows := make(map[string]entity.SPRow, len(sp.Rows))
		for _, row := range sp.Rows {
			spRows[row.SKU] = row
		}

		pnrID := uuid.New().String()[:32]
		catalog := s.catalog.WithTx(tx)
		items := make([]entity.PenerimaanItem, 0, len(req.Items))
		totalDikirim := 0
		for _, it := range req.Items {
			if it.SKU == "" {
				return validationf("sku item wajib diisi")
			}
			if it.Dikirim <= 0 {
				return validationf("jumlah dikirim %s harus lebih dari 0", it.SKU)
			}
			item := entity.PenerimaanItem{
				ID:           uuid.New().String()[:32],
				PenerimaanID: pnrID,
				SKU:          it.SKU,
				Dikirim:      it.Dikirim,
				IsBonus:      it.IsBonus,
			}
			if row, ok := spRows[it.SKU]; ok {
				item.Produk = row.Produk
				item.Warna = row.Warna
				item.Ukuran = row.Ukuran
			} else {
				item.IsBonus = true
				if p, err := catalog.FindProdukBySKU(ctx, it.SKU); err == nil {
					item.Produk = p.Nama
					item.Warna = p.Warna
					item.Ukuran = p.Ukuran
				}
			}
			items = append(items, item)
			totalDikirim += it.Dikirim
		}

		pnrRepo := s.penerimaan.WithTx(tx)
		prefix := pnrNoPrefix(sp.No)
		last, err := pnrRepo.LastNo(ctx, prefix)
		if err != nil {
			return err
		}
		pnr = &entity.Penerimaan{
			ID:           pnrID,
			No:           fmt.Sprintf("%s%02d", prefix, nextSeq(last)),
			SPID:         sp.ID,
			SPNo:         sp.No,
			VendorNama:   sp.VendorNama,
			Items:        items,
			TotalDikirim: totalDikirim,
			Status:       entity.PenerimaanMenungguQC,
			Tgl:          time.Now(),
		}
		if err := pnrRepo.Create(ctx, pnr); err != nil {
			return err
		}

		sp.Diterima += totalDikirim
		sp.Status = hitungStatusSP(sp.Diterima, sp.TargetTotal)
		if err := sps.Update(ctx, sp); err != nil {
			return err
		}
		detail := fmt.Sprintf("Penerimaan %s (%d pcs) dari %s atas %s", pnr.No, totalDikirim, sp.VendorNama, sp.No)
		return s.audit.WithTx(tx).Append(ctx, "Terima Barang", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return pnr, nil
}

// SimpanQC fase 2: menutup QC sebuah penerimaan. Setiap item harus
// tercakup dengan lolos+gagal == dikirim; kalau tidak, seluruh operasi
// ditolak tanpa efek. Lolos membuat batch stok BARU per item, gagal
// membuat retur vendor (QC Gagal, Menunggu).
func (s *PenerimaanService) SimpanQC(ctx context.Context, id string, results []QCResultRequest, username string) (*entity.Penerimaan, error) {
	var pnr *entity.Penerimaan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pnrRepo := s.penerimaan.WithTx(tx)
		var err error
		pnr, err = pnrRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "penerimaan", id)
		}
		if pnr.Status != entity.PenerimaanMenungguQC {
			return invalidStatef("penerimaan %s sudah %s", pnr.No, pnr.Status)
		}

		byItem := make(map[string]QCResultRequest, len(results))
		for _, r := range results {
			byItem[r.ItemID] = r
		}

		for i := range pnr.Items {
			item := &pnr.Items[i]
			r, ok := byItem[item.ID]
			if !ok {
				return domainErrf(KindQCImbalance, "item %s belum punya hasil QC", item.SKU)
			}
			if r.Lolos < 0 || r.Gagal < 0 {
				return validationf("hasil QC %s tidak boleh negatif", item.SKU)
			}
			if r.Lolos+r.Gagal != item.Dikirim {
				return domainErrf(KindQCImbalance, "item %s: lolos %d + gagal %d != dikirim %d", item.SKU, r.Lolos, r.Gagal, item.Dikirim)
			}
			item.Lolos = r.Lolos
			item.Gagal = r.Gagal
			item.Alasan = r.Alasan
		}

		batchRepo := s.batches.WithTx(tx)
		returRepo := s.retur.WithTx(tx)
		totalLolos, totalGagal := 0, 0
		now := time.Now()
		for i := range pnr.Items {
			item := &pnr.Items[i]
			if item.Lolos > 0 {
				batch := &entity.StokBatch{
					ID:         uuid.New().String()[:32],
					SKU:        item.SKU,
					Produk:     item.Produk,
					Warna:      item.Warna,
					Ukuran:     item.Ukuran,
					SPNo:       pnr.SPNo,
					VendorNama: pnr.VendorNama,
					Masuk:      item.Lolos,
					Sisa:       item.Lolos,
					PNRNo:      pnr.No,
					Tgl:        now,
				}
				if err := batchRepo.Create(ctx, batch); err != nil {
					return err
				}
			}
			if item.Gagal > 0 {
				rv := &entity.ReturVendor{
					ID:         uuid.New().String()[:32],
					SKU:        item.SKU,
					Produk:     item.Produk,
					Warna:      item.Warna,
					Ukuran:     item.Ukuran,
					VendorNama: pnr.VendorNama,
					SPNo:       pnr.SPNo,
					Qty:        item.Gagal,
					Alasan:     item.Alasan,
					Sumber:     entity.SumberQCGagal,
					Status:     entity.ReturVendorMenunggu,
					Tgl:        now,
				}
				if err := returRepo.CreateVendor(ctx, rv); err != nil {
					return err
				}
			}
			if err := pnrRepo.UpdateItem(ctx, item); err != nil {
				return err
			}
			totalLolos += item.Lolos
			totalGagal += item.Gagal
		}

		pnr.TotalLolos = totalLolos
		pnr.TotalGagal = totalGagal
		pnr.Status = entity.PenerimaanSelesaiQC
		if err := pnrRepo.Update(ctx, pnr); err != nil {
			return err
		}
		detail := fmt.Sprintf("QC %s selesai: %d lolos, %d gagal", pnr.No, totalLolos, totalGagal)
		return s.audit.WithTx(tx).Append(ctx, "Simpan QC", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return pnr, nil
}
