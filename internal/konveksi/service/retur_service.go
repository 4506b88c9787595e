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

// ReturService tiga alur retur: customer (tiga resolusi terminal),
// vendor (dua langkah), dan supplier (linear dengan satu cabang).
type ReturService struct {
	retur   *repository.ReturRepository
	orders  *repository.OrderRepository
	batches *repository.BatchRepository
	audit   *repository.AuditRepository
	db      *gorm.DB
}

func NewReturService(retur *repository.ReturRepository, orders *repository.OrderRepository, batches *repository.BatchRepository, audit *repository.AuditRepository, db *gorm.DB) *ReturService {
	return &ReturService{retur: retur, orders: orders, batches: batches, audit: audit, db: db}
}

type AjukanReturCustomerRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	ItemIndex int    `json:"item_index"`
	Qty       int    `json:"qty"`
	Alasan    string `json:"alasan" binding:"required"`
}

type TukarReturRequest struct {
	BatchID string `json:"batch_id" binding:"required"`
	Qty     int    `json:"qty"`
}

func (s *ReturService) ListCustomer(ctx context.Context) ([]entity.ReturCustomer, error) {
	return s.retur.ListCustomer(ctx)
}

func (s *ReturService) ListVendor(ctx context.Context) ([]entity.ReturVendor, error) {
	return s.retur.ListVendor(ctx)
}

func (s *ReturService) ListSupplier(ctx context.Context) ([]entity.ReturSupplier, error) {
	return s.retur.ListSupplier(ctx)
}

// AjukanReturCustomer membuka retur atas satu item order yang sudah
// Selesai. Barang masuk status Menunggu Pengecekan sampai dipilih satu
// dari tiga resolusi.
func (s *ReturService) AjukanReturCustomer(ctx context.Context, req AjukanReturCustomerRequest, username string) (*entity.ReturCustomer, error) {
	if req.Qty <= 0 {
		return nil, validationf("qty retur harus lebih dari 0")
	}
	if req.Alasan == "" {
		return nil, validationf("alasan retur wajib diisi")
	}
	var rc *entity.ReturCustomer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orders.WithTx(tx).FindByID(ctx, req.OrderID)
		if err != nil {
			return asNotFound(err, "order", req.OrderID)
		}
		if order.Status != entity.OrderSelesai {
			return invalidStatef("order %s berstatus %s, retur hanya untuk order Selesai", order.No, order.Status)
		}
		if req.ItemIndex < 0 || req.ItemIndex >= len(order.Items) {
			return validationf("item order tidak ditemukan")
		}
		item := order.Items[req.ItemIndex]
		if req.Qty > item.Qty {
			return validationf("qty retur %d melebihi qty order %d", req.Qty, item.Qty)
		}

		rc = &entity.ReturCustomer{
			ID:      uuid.New().String()[:32],
			OrderNo: order.No,
			SKU:     item.SKU,
			Produk:  item.Produk,
			Warna:   item.Warna,
			Ukuran:  item.Ukuran,
			BatchID: item.BatchID,
			SPNo:    item.SPNo,
			Vendor:  item.Vendor,
			Qty:     req.Qty,
			Alasan:  req.Alasan,
			Status:  entity.ReturCustMenunggu,
			Tgl:     time.Now(),
		}
		if err := s.retur.WithTx(tx).CreateCustomer(ctx, rc); err != nil {
			return err
		}
		detail := fmt.Sprintf("Retur customer %d pcs %s atas %s", req.Qty, item.SKU, order.No)
		return s.audit.WithTx(tx).Append(ctx, "Ajukan Retur Customer", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *ReturService) lockCustomerMenunggu(ctx context.Context, tx *gorm.DB, id string) (*entity.ReturCustomer, error) {
	rc, err := s.retur.WithTx(tx).FindCustomerByIDForUpdate(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "retur customer", id)
	}
	if rc.Status != entity.ReturCustMenunggu {
		return nil, invalidStatef("retur %s sudah diresolusi (%s)", rc.ID, rc.Status)
	}
	return rc, nil
}

// Musnahkan resolusi 1: barang dimusnahkan, tanpa efek stok.
func (s *ReturService) Musnahkan(ctx context.Context, id, username string) (*entity.ReturCustomer, error) {
	var rc *entity.ReturCustomer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rc, err = s.lockCustomerMenunggu(ctx, tx, id)
		if err != nil {
			return err
		}
		rc.Status = entity.ReturCustDimusnahkan
		if err := s.retur.WithTx(tx).UpdateCustomer(ctx, rc); err != nil {
			return err
		}
		detail := fmt.Sprintf("Retur %s (%d pcs %s) dimusnahkan", rc.ID, rc.Qty, rc.SKU)
		return s.audit.WithTx(tx).Append(ctx, "Musnahkan Retur", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// Tukar resolusi 2: qty retur dikreditkan kembali ke batch asal dan
// barang pengganti dipotong dari batch pilihan operator.
func (s *ReturService) Tukar(ctx context.Context, id string, req TukarReturRequest, username string) (*entity.ReturCustomer, error) {
	if req.Qty <= 0 {
		return nil, validationf("qty pengganti harus lebih dari 0")
	}
	var rc *entity.ReturCustomer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rc, err = s.lockCustomerMenunggu(ctx, tx, id)
		if err != nil {
			return err
		}

		deltas := map[string]int{rc.BatchID: rc.Qty}
		deltas[req.BatchID] -= req.Qty
		if _, err := applyDeltas(ctx, s.batches.WithTx(tx), deltas); err != nil {
			return err
		}

		rc.Status = entity.ReturCustSelesaiDitukar
		if err := s.retur.WithTx(tx).UpdateCustomer(ctx, rc); err != nil {
			return err
		}
		detail := fmt.Sprintf("Retur %s ditukar: %d pcs kembali, %d pcs pengganti", rc.ID, rc.Qty, req.Qty)
		return s.audit.WithTx(tx).Append(ctx, "Tukar Retur", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// KirimKeVendor resolusi 3: barang retur diteruskan ke vendor sebagai
// retur vendor baru (Menunggu).
func (s *ReturService) KirimKeVendor(ctx context.Context, id, username string) (*entity.ReturCustomer, error) {
	var rc *entity.ReturCustomer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rc, err = s.lockCustomerMenunggu(ctx, tx, id)
		if err != nil {
			return err
		}
		rv := &entity.ReturVendor{
			ID:         uuid.New().String()[:32],
			SKU:        rc.SKU,
			Produk:     rc.Produk,
			Warna:      rc.Warna,
			Ukuran:     rc.Ukuran,
			VendorNama: rc.Vendor,
			SPNo:       rc.SPNo,
			Qty:        rc.Qty,
			Alasan:     rc.Alasan,
			Sumber:     entity.SumberReturCustomer,
			Status:     entity.ReturVendorMenunggu,
			Tgl:        time.Now(),
		}
		if err := s.retur.WithTx(tx).CreateVendor(ctx, rv); err != nil {
			return err
		}
		rc.Status = entity.ReturCustDikirimKeVendor
		if err := s.retur.WithTx(tx).UpdateCustomer(ctx, rc); err != nil {
			return err
		}
		detail := fmt.Sprintf("Retur %s (%d pcs %s) diteruskan ke vendor %s", rc.ID, rc.Qty, rc.SKU, rc.Vendor)
		return s.audit.WithTx(tx).Append(ctx, "Retur ke Vendor", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *ReturService) ubahStatusVendor(ctx context.Context, id string, from, to entity.ReturVendorStatus, action, username string, masukGudang bool) (*entity.ReturVendor, error) {
	var rv *entity.ReturVendor
	err := s.db.Transaction(func(tx *gorm.DB) error {
		returRepo := s.retur.WithTx(tx)
		var err error
		rv, err = returRepo.FindVendorByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "retur vendor", id)
		}
		if rv.Status != from {
			return invalidStatef("retur vendor %s berstatus %s, bukan %s", rv.ID, rv.Status, from)
		}

		if masukGudang {
			batch := &entity.StokBatch{
				ID:         uuid.New().String()[:32],
				SKU:        rv.SKU,
				Produk:     rv.Produk,
				Warna:      rv.Warna,
				Ukuran:     rv.Ukuran,
				SPNo:       rv.SPNo,
				VendorNama: rv.VendorNama,
				Masuk:      rv.Qty,
				Sisa:       rv.Qty,
				PNRNo:      "RTV-" + rv.ID,
				Tgl:        time.Now(),
			}
			if err := s.batches.WithTx(tx).Create(ctx, batch); err != nil {
				return err
			}
		}

		rv.Status = to
		if err := returRepo.UpdateVendor(ctx, rv); err != nil {
			return err
		}
		detail := fmt.Sprintf("Retur vendor %s (%d pcs %s) %s", rv.ID, rv.Qty, rv.SKU, to)
		return s.audit.WithTx(tx).Append(ctx, action, detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// KirimReturVendor mengirim fisik barang ke vendor: Menunggu -> Di Vendor.
func (s *ReturService) KirimReturVendor(ctx context.Context, id, username string) (*entity.ReturVendor, error) {
	return s.ubahStatusVendor(ctx, id, entity.ReturVendorMenunggu, entity.ReturVendorDiVendor, "Kirim Retur Vendor", username, false)
}

// MasukGudang vendor mengganti barang; batch stok baru dibuat dari qty retur.
func (s *ReturService) MasukGudang(ctx context.Context, id, username string) (*entity.ReturVendor, error) {
	return s.ubahStatusVendor(ctx, id, entity.ReturVendorDiVendor, entity.ReturVendorMasukGudang, "Retur Vendor Masuk Gudang", username, true)
}

// RefundVendor vendor mengembalikan uang; tanpa efek stok.
func (s *ReturService) RefundVendor(ctx context.Context, id, username string) (*entity.ReturVendor, error) {
	return s.ubahStatusVendor(ctx, id, entity.ReturVendorDiVendor, entity.ReturVendorRefund, "Refund Retur Vendor", username, false)
}

func (s *ReturService) ubahStatusSupplier(ctx context.Context, id string, from, to entity.ReturSupplierStatus, action, username string) (*entity.ReturSupplier, error) {
	var rs *entity.ReturSupplier
	err := s.db.Transaction(func(tx *gorm.DB) error {
		returRepo := s.retur.WithTx(tx)
		var err error
		rs, err = returRepo.FindSupplierByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "retur supplier", id)
		}
		if rs.Status != from {
			return invalidStatef("retur supplier %s berstatus %s, bukan %s", rs.ID, rs.Status, from)
		}
		rs.Status = to
		if err := returRepo.UpdateSupplier(ctx, rs); err != nil {
			return err
		}
		detail := fmt.Sprintf("Retur supplier %s (roll %s) %s", rs.ID, rs.Barcode, to)
		return s.audit.WithTx(tx).Append(ctx, action, detail, username)
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// KirimKeSupplier roll rusak dikirim fisik: Menunggu Kirim -> Sudah Dikirim.
func (s *ReturService) KirimKeSupplier(ctx context.Context, id, username string) (*entity.ReturSupplier, error) {
	return s.ubahStatusSupplier(ctx, id, entity.ReturSuppMenungguKirim, entity.ReturSuppSudahDikirim, "Kirim Retur Supplier", username)
}

// TerimaPengganti supplier mengirim pengganti. Terminal; roll pengganti
// dicatat operator lewat penerimaan roll biasa.
func (s *ReturService) TerimaPengganti(ctx context.Context, id, username string) (*entity.ReturSupplier, error) {
	return s.ubahStatusSupplier(ctx, id, entity.ReturSuppSudahDikirim, entity.ReturSuppPenggantiDiterima, "Pengganti Diterima", username)
}

// CatatKerugian tidak ada pengganti dari supplier. Terminal.
func (s *ReturService) CatatKerugian(ctx context.Context, id, username string) (*entity.ReturSupplier, error) {
	return s.ubahStatusSupplier(ctx, id, entity.ReturSuppSudahDikirim, entity.ReturSuppKerugian, "Catat Kerugian", username)
}
