package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// OrderService alokasi penjualan terhadap batch stok. Batch dipilih
// operator per item; stok dipotong saat order dibuat dan dikembalikan
// saat dibatalkan.
type OrderService struct {
	orders  *repository.OrderRepository
	batches *repository.BatchRepository
	catalog *repository.CatalogRepository
	audit   *repository.AuditRepository
	db      *gorm.DB
}

func NewOrderService(orders *repository.OrderRepository, batches *repository.BatchRepository, catalog *repository.CatalogRepository, audit *repository.AuditRepository, db *gorm.DB) *OrderService {
	return &OrderService{orders: orders, batches: batches, catalog: catalog, audit: audit, db: db}
}

type OrderItemRequest struct {
	BatchID string `json:"batch_id" binding:"required"`
	Qty     int    `json:"qty"`
}

type BuatOrderRequest struct {
	Channel string             `json:"channel" binding:"required"`
	Tipe    string             `json:"tipe"`
	Items   []OrderItemRequest `json:"items" binding:"required"`
	Catatan string             `json:"catatan"`
}

func (s *OrderService) List(ctx context.Context, status entity.OrderStatus) ([]entity.OrderPenjualan, error) {
	return s.orders.List(ctx, status)
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.OrderPenjualan, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "order", id)
	}
	return o, nil
}

func validChannel(ch string) bool {
	return ch == entity.ChannelShopee || ch == entity.ChannelTikTok || ch == entity.ChannelOffline
}

// applyDeltas mengunci batch dalam urutan ID yang stabil lalu menerapkan
// delta sisa. Satu batch yang akan negatif menolak seluruh operasi.
func applyDeltas(ctx context.Context, batches *repository.BatchRepository, deltas map[string]int) (map[string]*entity.StokBatch, error) {
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	locked := make(map[string]*entity.StokBatch, len(ids))
	for _, id := range ids {
		b, err := batches.FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, asNotFound(err, "batch", id)
		}
		sisa := b.Sisa + deltas[id]
		if sisa < 0 {
			return nil, domainErrf(KindInsufficientStock, "stok batch %s (%s) kurang: sisa %d, butuh %d", b.ID, b.SKU, b.Sisa, -deltas[id])
		}
		if sisa > b.Masuk {
			return nil, validationf("pengembalian melebihi jumlah masuk batch %s", b.ID)
		}
		b.Sisa = sisa
		locked[id] = b
	}
	for _, id := range ids {
		if err := batches.Update(ctx, locked[id]); err != nil {
			return nil, err
		}
	}
	return locked, nil
}

// buildItems memvalidasi item order dan menghitung delta pemotongan per
// batch. Beberapa item boleh menunjuk batch yang sama; delta dijumlahkan
// sehingga total terhadap satu batch diperiksa sekali.
func (s *OrderService) buildItems(ctx context.Context, batches *repository.BatchRepository, orderID string, reqs []OrderItemRequest) ([]entity.OrderItem, map[string]int, int, error) {
	if len(reqs) == 0 {
		return nil, nil, 0, validationf("order butuh minimal satu item")
	}
	deltas := make(map[string]int)
	items := make([]entity.OrderItem, 0, len(reqs))
	total := 0
	for _, it := range reqs {
		if it.Qty <= 0 {
			return nil, nil, 0, validationf("qty item harus lebih dari 0")
		}
		b, err := batches.FindByID(ctx, it.BatchID)
		if err != nil {
			return nil, nil, 0, asNotFound(err, "batch", it.BatchID)
		}
		items = append(items, entity.OrderItem{
			ID:      uuid.New().String()[:32],
			OrderID: orderID,
			SKU:     b.SKU,
			Produk:  b.Produk,
			Warna:   b.Warna,
			Ukuran:  b.Ukuran,
			BatchID: b.ID,
			SPNo:    b.SPNo,
			Vendor:  b.VendorNama,
			Qty:     it.Qty,
		})
		deltas[b.ID] -= it.Qty
		total += it.Qty
	}
	return items, deltas, total, nil
}

// BuatOrder membuat order Draft dan memotong stok setiap batch secara
// atomik. Satu item yang kekurangan stok membatalkan semuanya.
func (s *OrderService) BuatOrder(ctx context.Context, req BuatOrderRequest, username string) (*entity.OrderPenjualan, error) {
	if !validChannel(req.Channel) {
		return nil, validationf("channel %s tidak dikenal", req.Channel)
	}
	tipe := req.Tipe
	if tipe == "" {
		tipe = entity.TipeRetail
	}
	if tipe != entity.TipeRetail && tipe != entity.TipeWholesale {
		return nil, validationf("tipe %s tidak dikenal", req.Tipe)
	}

	var order *entity.OrderPenjualan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		batchRepo := s.batches.WithTx(tx)
		orderID := uuid.New().String()[:32]
		items, deltas, total, err := s.buildItems(ctx, batchRepo, orderID, req.Items)
		if err != nil {
			return err
		}
		if _, err := applyDeltas(ctx, batchRepo, deltas); err != nil {
			return err
		}

		now := time.Now()
		orders := s.orders.WithTx(tx)
		prefix := orderNoPrefix(req.Channel, now)
		last, err := orders.LastNo(ctx, prefix)
		if err != nil {
			return err
		}
		order = &entity.OrderPenjualan{
			ID:       orderID,
			No:       fmt.Sprintf("%s%03d", prefix, nextSeq(last)),
			Channel:  req.Channel,
			Tipe:     tipe,
			Items:    items,
			TotalPcs: total,
			Status:   entity.OrderDraft,
			Catatan:  req.Catatan,
			Tgl:      now,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		detail := fmt.Sprintf("Order %s (%s, %d pcs) dibuat", order.No, order.Channel, total)
		return s.audit.WithTx(tx).Append(ctx, "Buat Order", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// EditOrder mengganti item order Draft. Delta bersih per batch dihitung
// dari qty lama dikreditkan dan qty baru dipotong, lalu diterapkan atomik.
func (s *OrderService) EditOrder(ctx context.Context, id string, reqs []OrderItemRequest, username string) (*entity.OrderPenjualan, error) {
	var order *entity.OrderPenjualan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		var err error
		order, err = orders.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "order", id)
		}
		if order.Status != entity.OrderDraft {
			return invalidStatef("order %s berstatus %s, hanya Draft yang bisa diedit", order.No, order.Status)
		}

		batchRepo := s.batches.WithTx(tx)
		items, deltas, total, err := s.buildItems(ctx, batchRepo, order.ID, reqs)
		if err != nil {
			return err
		}
		for _, old := range order.Items {
			deltas[old.BatchID] += old.Qty
		}
		if _, err := applyDeltas(ctx, batchRepo, deltas); err != nil {
			return err
		}

		if err := orders.ReplaceItems(ctx, order.ID, items); err != nil {
			return err
		}
		order.Items = items
		order.TotalPcs = total
		if err := orders.Update(ctx, order); err != nil {
			return err
		}
		detail := fmt.Sprintf("Order %s diedit menjadi %d pcs", order.No, total)
		return s.audit.WithTx(tx).Append(ctx, "Edit Order", detail, username)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SelesaikanOrder menandai order Draft sebagai Selesai. Tidak ada efek
// stok; pemotongan sudah terjadi saat pembuatan.
func (s *OrderService) SelesaikanOrder(ctx context.Context, id, username string) (*entity.OrderPenjualan, error) {
	return s.ubahStatus(ctx, id, entity.OrderSelesai, "Selesaikan Order", username)
}

// BatalkanOrder membatalkan order Draft dan mengembalikan qty tiap item
// ke batch asalnya.
func (s *OrderService) BatalkanOrder(ctx context.Context, id, username string) (*entity.OrderPenjualan, error) {
	return s.ubahStatus(ctx, id, entity.OrderDibatalkan, "Batalkan Order", username)
}

func (s *OrderService) ubahStatus(ctx context.Context, id string, target entity.OrderStatus, action, username string) (*entity.OrderPenjualan, error) {
	var order *entity.OrderPenjualan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		var err error
		order, err = orders.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "order", id)
		}
		if order.Status != entity.OrderDraft {
			return invalidStatef("order %s berstatus %s, bukan Draft", order.No, order.Status)
		}

		if target == entity.OrderDibatalkan {
			deltas := make(map[string]int)
			for _, it := range order.Items {
				deltas[it.BatchID] += it.Qty
			}
			if _, err := applyDeltas(ctx, s.batches.WithTx(tx), deltas); err != nil {
				return err
			}
		}

		order.Status = target
		if err := orders.Update(ctx, order); err != nil {
			return err
		}
		detail := fmt.Sprintf("Order %s %s", order.No, target)
		return s.audit.WithTx(tx).Append(ctx, action, detail, username)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// HapusOrder menghapus arsip order tanpa menyentuh stok. Draft harus
// dibatalkan dulu supaya stok tidak hilang diam-diam.
func (s *OrderService) HapusOrder(ctx context.Context, id, username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		order, err := orders.FindByIDForUpdate(ctx, id)
		if err != nil {
			return asNotFound(err, "order", id)
		}
		if order.Status != entity.OrderSelesai && order.Status != entity.OrderDibatalkan {
			return invalidStatef("order %s berstatus %s, batalkan dulu sebelum dihapus", order.No, order.Status)
		}
		if err := orders.Delete(ctx, order.ID); err != nil {
			return err
		}
		detail := fmt.Sprintf("Order %s dihapus dari arsip", order.No)
		return s.audit.WithTx(tx).Append(ctx, "Hapus Order", detail, username)
	})
}
