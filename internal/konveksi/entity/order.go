package entity

import "time"

// OrderStatus status order penjualan.
type OrderStatus string

const (
	OrderDraft      OrderStatus = "Draft"
	OrderSelesai    OrderStatus = "Selesai"
	OrderDibatalkan OrderStatus = "Dibatalkan"
)

// Sales channels
const (
	ChannelShopee  = "Shopee"
	ChannelTikTok  = "TikTok"
	ChannelOffline = "Offline"
)

// Order types
const (
	TipeRetail    = "Retail"
	TipeWholesale = "Wholesale"
)

// OrderPenjualan order penjualan customer. Stok batch dipotong saat order
// dibuat (Draft), dikembalikan saat dibatalkan.
type OrderPenjualan struct {
	ID        string      `json:"id" gorm:"primaryKey;size:32"`
	No        string      `json:"no" gorm:"size:30;uniqueIndex;not null"` // PJ-{channel}-{YYMMDD}-{urut}
	Channel   string      `json:"channel" gorm:"size:20;not null"`
	Tipe      string      `json:"tipe" gorm:"size:20;not null;default:Retail"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalPcs  int         `json:"total_pcs" gorm:"not null;default:0"`
	Status    OrderStatus `json:"status" gorm:"size:20;not null;default:Draft;index"`
	Catatan   string      `json:"catatan" gorm:"type:text"`
	Tgl       time.Time   `json:"tgl" gorm:"not null"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (OrderPenjualan) TableName() string {
	return "nj_order_penjualan"
}

// OrderItem satu baris order; batch dipilih eksplisit oleh operator,
// engine tidak melakukan pemilihan FIFO otomatis.
type OrderItem struct {
	ID      string `json:"id" gorm:"primaryKey;size:32"`
	OrderID string `json:"order_id" gorm:"size:32;not null;index"`
	SKU     string `json:"sku" gorm:"size:30;not null"`
	Produk  string `json:"produk" gorm:"size:200"`
	Warna   string `json:"warna" gorm:"size:50"`
	Ukuran  string `json:"ukuran" gorm:"size:10"`
	BatchID string `json:"batch_id" gorm:"size:32;not null;index"`
	SPNo    string `json:"sp_no" gorm:"size:30"`
	Vendor  string `json:"vendor" gorm:"size:100"`
	Qty     int    `json:"qty" gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "nj_order_items"
}
