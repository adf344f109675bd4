package services

import (
	"testing"

	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
)

func testInvoiceLoader(id int64) (InvoiceData, error) {
	return InvoiceData{
		Booking: models.Booking{
			ID:            id,
			Code:          "UMR-20250110-0001",
			PackageType:   "umrah",
			CustomerName:  "H. Abdullah",
			CustomerPhone: "0812",
			AdultsRaw:     "2",
			ChildrenRaw:   "1",
			DepartureDate: "2025-01-10",
		},
		Input: pricing.BookingInput{
			Counts: pricing.TravelerCounts{Adults: 2, Children: 1},
			Hotels: []pricing.HotelSelection{{HotelID: 1, HotelName: "Al Safwah", CheckIn: "2025-01-10", Nights: 3}},
			HotelRates: []pricing.HotelRate{{HotelID: 1, StartDate: "2025-01-01", EndDate: "2025-01-31",
				Prices: pricing.TierPrices{Adult: 100, Child: 50}}},
			Food:      []pricing.ServiceSelection{{ItemID: 5}},
			FoodRates: []pricing.ServiceRate{{ItemID: 5, Label: "Fullboard", Prices: pricing.TierPrices{Adult: 20, Child: 10}}},
		},
	}, nil
}

func TestInvoiceQuoteUsesSharedSheet(t *testing.T) {
	svc := InvoiceService{Loader: testInvoiceLoader}

	sheet, data, err := svc.Quote(1)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if data.Booking.Code == "" {
		t.Fatalf("booking data missing")
	}
	if got := sheet.GrandTotal(); got != 800 {
		t.Fatalf("grand total = %v, want 800", got)
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	svc := InvoiceService{Loader: testInvoiceLoader}

	pdf, filename, err := svc.GenerateInvoice(1)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateInvoice returned empty data")
	}
	if filename == "" {
		t.Fatalf("filename kosong")
	}
}

func TestGenerateInvoiceWithUnpricedLineStillRenders(t *testing.T) {
	loader := func(id int64) (InvoiceData, error) {
		return InvoiceData{
			Booking: models.Booking{ID: id, Code: "UMR-X", CustomerName: "Tester"},
			Input: pricing.BookingInput{
				Counts: pricing.TravelerCounts{Adults: 2},
				// hotel tanpa musim yang cocok
				Hotels: []pricing.HotelSelection{{HotelID: 9, HotelName: "Unknown", CheckIn: "2030-01-01", Nights: 2}},
			},
		}, nil
	}
	svc := InvoiceService{Loader: loader}

	sheet, _, err := svc.Quote(7)
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if len(sheet.Hotel) != 1 || !sheet.Hotel[0].Unpriced {
		t.Fatalf("unpriced hotel line harus tetap muncul: %+v", sheet.Hotel)
	}

	pdf, _, err := svc.GenerateInvoice(7)
	if err != nil || len(pdf) == 0 {
		t.Fatalf("PDF gagal untuk unpriced line: err=%v len=%d", err, len(pdf))
	}
}
