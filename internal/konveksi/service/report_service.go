package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// ReportService ringkasan dashboard dan ekspor laporan XLSX.
// Hanya membaca, tidak pernah memutasi stok.
type ReportService struct {
	batches *repository.BatchRepository
	orders  *repository.OrderRepository
	sps     *repository.SPRepository
	rolls   *repository.RollRepository
	retur   *repository.ReturRepository
}

func NewReportService(batches *repository.BatchRepository, orders *repository.OrderRepository, sps *repository.SPRepository, rolls *repository.RollRepository, retur *repository.ReturRepository) *ReportService {
	return &ReportService{batches: batches, orders: orders, sps: sps, rolls: rolls, retur: retur}
}

// DashboardSummary angka-angka ringkas untuk halaman depan.
type DashboardSummary struct {
	RollTersedia    int `json:"roll_tersedia"`
	SPBerjalan      int `json:"sp_berjalan"`
	StokTotal       int `json:"stok_total"`
	OrderDraft      int `json:"order_draft"`
	ReturCustOpen   int `json:"retur_customer_open"`
	ReturVendorOpen int `json:"retur_vendor_open"`
}

func (s *ReportService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	sum := &DashboardSummary{}

	rolls, err := s.rolls.List(ctx, entity.RollTersedia)
	if err != nil {
		return nil, err
	}
	sum.RollTersedia = len(rolls)

	for _, st := range []entity.SPStatus{entity.SPDikirim, entity.SPSebagian} {
		sps, err := s.sps.List(ctx, st)
		if err != nil {
			return nil, err
		}
		sum.SPBerjalan += len(sps)
	}

	batches, err := s.batches.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, b := range batches {
		sum.StokTotal += b.Sisa
	}

	drafts, err := s.orders.List(ctx, entity.OrderDraft)
	if err != nil {
		return nil, err
	}
	sum.OrderDraft = len(drafts)

	rcs, err := s.retur.ListCustomer(ctx)
	if err != nil {
		return nil, err
	}
	for _, rc := range rcs {
		if rc.Status == entity.ReturCustMenunggu {
			sum.ReturCustOpen++
		}
	}
	rvs, err := s.retur.ListVendor(ctx)
	if err != nil {
		return nil, err
	}
	for _, rv := range rvs {
		if rv.Status == entity.ReturVendorMenunggu || rv.Status == entity.ReturVendorDiVendor {
			sum.ReturVendorOpen++
		}
	}
	return sum, nil
}

var stokHeaders = []string{
	"SKU", "Produk", "Warna", "Ukuran", "No SP", "Vendor",
	"No Penerimaan", "Masuk", "Sisa", "Tanggal",
}

var penjualanHeaders = []string{
	"No Order", "Channel", "Tipe", "Status", "Total Pcs", "Tanggal",
}

// ExportLaporan menyusun workbook dua sheet: Stok per batch dan
// Penjualan per order.
func (s *ReportService) ExportLaporan(ctx context.Context) (*excelize.File, string, error) {
	batches, err := s.batches.List(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("list batches: %w", err)
	}
	orders, err := s.orders.List(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("list orders: %w", err)
	}

	f := excelize.NewFile()
	stokSheet := "Stok"
	f.SetSheetName("Sheet1", stokSheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range stokHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(stokSheet, cell, h)
		f.SetCellStyle(stokSheet, cell, cell, boldStyle)
	}

	totalSisa := 0
	for rowIdx, b := range batches {
		row := rowIdx + 2
		f.SetCellValue(stokSheet, fmt.Sprintf("A%d", row), b.SKU)
		f.SetCellValue(stokSheet, fmt.Sprintf("B%d", row), b.Produk)
		f.SetCellValue(stokSheet, fmt.Sprintf("C%d", row), b.Warna)
		f.SetCellValue(stokSheet, fmt.Sprintf("D%d", row), b.Ukuran)
		f.SetCellValue(stokSheet, fmt.Sprintf("E%d", row), b.SPNo)
		f.SetCellValue(stokSheet, fmt.Sprintf("F%d", row), b.VendorNama)
		f.SetCellValue(stokSheet, fmt.Sprintf("G%d", row), b.PNRNo)
		f.SetCellValue(stokSheet, fmt.Sprintf("H%d", row), b.Masuk)
		f.SetCellValue(stokSheet, fmt.Sprintf("I%d", row), b.Sisa)
		f.SetCellValue(stokSheet, fmt.Sprintf("J%d", row), b.Tgl.Format("2006-01-02"))
		totalSisa += b.Sisa
	}

	summaryRow := len(batches) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(stokSheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(stokSheet, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("Jumlah batch: %d", len(batches)))
	f.SetCellValue(stokSheet, fmt.Sprintf("I%d", summaryRow), totalSisa)
	f.SetCellStyle(stokSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("J%d", summaryRow), summaryStyle)

	colWidths := []float64{14, 24, 12, 8, 18, 18, 20, 8, 8, 12}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(stokSheet, col, col, w)
	}

	pjSheet := "Penjualan"
	f.NewSheet(pjSheet)
	for i, h := range penjualanHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(pjSheet, cell, h)
		f.SetCellStyle(pjSheet, cell, cell, boldStyle)
	}
	totalPcs := 0
	for rowIdx, o := range orders {
		row := rowIdx + 2
		f.SetCellValue(pjSheet, fmt.Sprintf("A%d", row), o.No)
		f.SetCellValue(pjSheet, fmt.Sprintf("B%d", row), o.Channel)
		f.SetCellValue(pjSheet, fmt.Sprintf("C%d", row), o.Tipe)
		f.SetCellValue(pjSheet, fmt.Sprintf("D%d", row), string(o.Status))
		f.SetCellValue(pjSheet, fmt.Sprintf("E%d", row), o.TotalPcs)
		f.SetCellValue(pjSheet, fmt.Sprintf("F%d", row), o.Tgl.Format("2006-01-02"))
		if o.Status != entity.OrderDibatalkan {
			totalPcs += o.TotalPcs
		}
	}
	pjSummary := len(orders) + 2
	f.SetCellValue(pjSheet, fmt.Sprintf("A%d", pjSummary), "Total")
	f.SetCellValue(pjSheet, fmt.Sprintf("E%d", pjSummary), totalPcs)
	f.SetCellStyle(pjSheet, fmt.Sprintf("A%d", pjSummary), fmt.Sprintf("F%d", pjSummary), summaryStyle)

	pjWidths := []float64{20, 10, 10, 12, 10, 12}
	for i, w := range pjWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(pjSheet, col, col, w)
	}

	filename := fmt.Sprintf("Laporan_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}
