package services

import (
	"fmt"

	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/xuri/excelize/v2"
)

// SalesReportFilter narrows the report by booking status and departure range.
type SalesReportFilter struct {
	Status    string
	StartDate string
	EndDate   string
}

// SalesRow is one booking in the sales report.
type SalesRow struct {
	BookingID     int64   `json:"booking_id"`
	Code          string  `json:"code"`
	CustomerName  string  `json:"customer_name"`
	PackageType   string  `json:"package_type"`
	DepartureDate string  `json:"departure_date"`
	InvoiceTotal  float64 `json:"invoice_total"`
	Paid          float64 `json:"paid"`
	Balance       float64 `json:"balance"`
}

// ReportsService assembles per-booking sales figures. Totals come from the
// same cost sheet the invoice prints.
type ReportsService struct {
	BookingRepo repositories.BookingRepository
	PaymentRepo repositories.PaymentRepository
	InvoiceSvc  InvoiceService
	RequestID   string

	// Rows lets tests feed data without a database.
	Rows func(SalesReportFilter) ([]SalesRow, error)
}

func (s ReportsService) SalesReport(f SalesReportFilter) ([]SalesRow, error) {
	if s.Rows != nil {
		return s.Rows(f)
	}

	bookings, _, err := s.BookingRepo.List(f.Status, 1, 200)
	if err != nil {
		return nil, err
	}

	start := pricing.DateOnly(f.StartDate)
	end := pricing.DateOnly(f.EndDate)

	out := []SalesRow{}
	for _, b := range bookings {
		dep := pricing.DateOnly(b.DepartureDate)
		if start != "" && (dep == "" || dep < start) {
			continue
		}
		if end != "" && (dep == "" || dep > end) {
			continue
		}

		sheet, _, err := s.InvoiceSvc.Quote(b.ID)
		if err != nil {
			return nil, err
		}
		paid, err := s.PaymentRepo.PaidTotal(b.ID)
		if err != nil {
			return nil, err
		}

		total := sheet.GrandTotal()
		out = append(out, SalesRow{
			BookingID:     b.ID,
			Code:          b.Code,
			CustomerName:  b.CustomerName,
			PackageType:   b.PackageType,
			DepartureDate: dep,
			InvoiceTotal:  total,
			Paid:          pricing.RoundMinor(paid),
			Balance:       pricing.RoundMinor(total - paid),
		})
	}

	utils.LogEvent(s.RequestID, "reports", "sales", fmt.Sprintf("rows=%d", len(out)))
	return out, nil
}

var salesHeader = []string{"Kode", "Customer", "Paket", "Berangkat", "Total Invoice", "Dibayar", "Sisa"}

// ExportSales renders the sales report as an XLSX download.
func (s ReportsService) ExportSales(f SalesReportFilter) ([]byte, string, error) {
	rows, err := s.SalesReport(f)
	if err != nil {
		return nil, "", err
	}

	xl := excelize.NewFile()
	defer xl.Close()

	const sheet = "Sales"
	xl.SetSheetName("Sheet1", sheet)

	for i, h := range salesHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := xl.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	var totalSum, paidSum float64
	for i, row := range rows {
		values := []any{row.Code, row.CustomerName, row.PackageType, row.DepartureDate,
			row.InvoiceTotal, row.Paid, row.Balance}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := xl.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
		totalSum += row.InvoiceTotal
		paidSum += row.Paid
	}

	// baris total di bawah
	footer := len(rows) + 2
	totals := []any{"TOTAL", "", "", "",
		pricing.RoundMinor(totalSum), pricing.RoundMinor(paidSum), pricing.RoundMinor(totalSum - paidSum)}
	for j, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(j+1, footer)
		if err := xl.SetCellValue(sheet, cell, v); err != nil {
			return nil, "", err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := "SALES_" + utils.FormatDate(utils.NowUTC()) + ".xlsx"
	return append([]byte(nil), buf.Bytes()...), filename, nil
}
