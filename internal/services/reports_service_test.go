package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func testSalesRows(f SalesReportFilter) ([]SalesRow, error) {
	return []SalesRow{
		{BookingID: 1, Code: "UMR-1", CustomerName: "Abdullah", PackageType: "umrah",
			DepartureDate: "2025-01-10", InvoiceTotal: 800, Paid: 300, Balance: 500},
		{BookingID: 2, Code: "HAJ-2", CustomerName: "Fatimah", PackageType: "hajj",
			DepartureDate: "2025-06-01", InvoiceTotal: 1200, Paid: 1200, Balance: 0},
	}, nil
}

func TestExportSalesXLSX(t *testing.T) {
	svc := ReportsService{Rows: testSalesRows}

	data, filename, err := svc.ExportSales(SalesReportFilter{})
	if err != nil {
		t.Fatalf("ExportSales returned error: %v", err)
	}
	if len(data) == 0 || filename == "" {
		t.Fatalf("export kosong: len=%d name=%q", len(data), filename)
	}

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("hasil export bukan xlsx valid: %v", err)
	}
	defer xl.Close()

	got, err := xl.GetCellValue("Sales", "A2")
	if err != nil {
		t.Fatalf("GetCellValue error: %v", err)
	}
	if got != "UMR-1" {
		t.Fatalf("A2 = %q, want UMR-1", got)
	}

	// baris total: 2 data + header -> baris 4
	total, err := xl.GetCellValue("Sales", "E4")
	if err != nil {
		t.Fatalf("GetCellValue error: %v", err)
	}
	if total != "2000" {
		t.Fatalf("total invoice = %q, want 2000", total)
	}
}
