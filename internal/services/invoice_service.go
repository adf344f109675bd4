package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InvoiceData is everything one invoice computation needs, assembled from the
// booking and the catalog snapshot.
type InvoiceData struct {
	Booking  models.Booking
	Input    pricing.BookingInput
	Warnings []string
}

// InvoiceService computes cost sheets and renders the printable invoice.
// Every consumer of a booking total goes through Quote so the breakdown and
// the billed amount always agree.
type InvoiceService struct {
	BookingRepo repositories.BookingRepository
	CatalogRepo repositories.CatalogRepository
	RequestID   string
	Loader      func(int64) (InvoiceData, error)
}

func (s InvoiceService) load(bookingID int64) (InvoiceData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var data InvoiceData
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return data, err
	}
	sel, err := s.BookingRepo.GetSelections(bookingID)
	if err != nil {
		return data, err
	}

	counts, bad := pricing.ParseTravelerCounts(booking.AdultsRaw, booking.ChildrenRaw, booking.InfantsRaw)
	for _, f := range bad {
		data.Warnings = append(data.Warnings, fmt.Sprintf("jumlah %s tidak terbaca, dihitung 0", f))
	}

	in := pricing.BookingInput{
		Counts:    counts,
		Hotels:    sel.Hotels,
		Transport: sel.Transport,
		Food:      sel.Food,
		Ziarat:    sel.Ziarat,
		Visa:      sel.Visa,
		Flight:    sel.Flight,
	}

	if in.HotelRates, err = s.CatalogRepo.ListHotelRates(0); err != nil {
		return data, err
	}
	if in.TransportRates, err = s.CatalogRepo.ListServiceRates(pricing.CategoryTransport); err != nil {
		return data, err
	}
	if in.FoodRates, err = s.CatalogRepo.ListServiceRates(pricing.CategoryFood); err != nil {
		return data, err
	}
	if in.ZiaratRates, err = s.CatalogRepo.ListServiceRates(pricing.CategoryZiarat); err != nil {
		return data, err
	}

	if sel.Visa.ItemID > 0 && !sel.Visa.SelfArranged {
		fee, visaType, err := s.CatalogRepo.GetVisaFee(sel.Visa.ItemID)
		if err != nil {
			return data, err
		}
		in.VisaFee = fee
		if visaType != "" {
			in.Visa.Label = "Visa " + visaType
		}
	}
	if sel.Flight.ItemID > 0 && !sel.Flight.SelfArranged {
		if in.FlightFare, err = s.CatalogRepo.GetFlightFare(sel.Flight.ItemID); err != nil {
			return data, err
		}
	}

	data.Booking = booking
	data.Input = in
	return data, nil
}

// Quote computes the cost sheet for a booking.
func (s InvoiceService) Quote(bookingID int64) (pricing.CostSheet, InvoiceData, error) {
	data, err := s.load(bookingID)
	if err != nil {
		return pricing.CostSheet{}, data, err
	}
	sheet := pricing.Compute(data.Input)
	utils.LogEvent(s.RequestID, "invoice", "quote",
		fmt.Sprintf("booking_id=%d total=%s", bookingID, utils.FormatMoney(sheet.GrandTotal())))
	return sheet, data, nil
}

// GenerateInvoice renders the printable PDF and returns it with a filename.
func (s InvoiceService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	sheet, data, err := s.Quote(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "invoice", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(data, sheet)
}

var categoryTitles = []struct {
	key   string
	title string
}{
	{pricing.CategoryHotel, "Hotel"},
	{pricing.CategoryTransport, "Transportasi"},
	{pricing.CategoryFood, "Catering"},
	{pricing.CategoryZiarat, "Ziarat"},
	{pricing.CategoryVisa, "Visa"},
	{pricing.CategoryFlight, "Tiket Pesawat"},
}

func buildInvoicePDF(d InvoiceData, sheet pricing.CostSheet) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%s", safeCode(d.Booking))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "No Invoice   : "+invNo)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Tanggal      : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Paket        : %s (berangkat %s)",
		strings.ToUpper(d.Booking.PackageType), safe(d.Booking.DepartureDate, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Ditagihkan kepada:")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Nama   : %s", safe(d.Booking.CustomerName, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("No HP  : %s", safe(d.Booking.CustomerPhone, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Jamaah : %d dewasa, %d anak, %d bayi",
		d.Input.Counts.Adults, d.Input.Counts.Children, d.Input.Counts.Infants))
	pdf.Ln(10)

	subtotals := sheet.Subtotals()
	byCategory := map[string][]pricing.LineItem{
		pricing.CategoryHotel:     sheet.Hotel,
		pricing.CategoryTransport: sheet.Transport,
		pricing.CategoryFood:      sheet.Food,
		pricing.CategoryZiarat:    sheet.Ziarat,
		pricing.CategoryVisa:      sheet.Visa,
		pricing.CategoryFlight:    sheet.Flight,
	}

	for _, cat := range categoryTitles {
		lines := byCategory[cat.key]
		if len(lines) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, cat.title)
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		for _, li := range lines {
			desc := li.Label
			if li.Nights > 0 {
				desc += fmt.Sprintf(" - %d malam x %s/malam", li.Nights, utils.FormatRupiah(li.PerNight))
			}
			if li.Unpriced {
				desc += " (harga belum tersedia)"
			}
			pdf.CellFormat(140, 6, desc, "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, utils.FormatRupiah(li.Net), "", 0, "R", false, 0, "")
			pdf.Ln(6)
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(140, 6, "Subtotal "+cat.title, "T", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, utils.FormatRupiah(subtotals[cat.key]), "T", 0, "R", false, 0, "")
		pdf.Ln(9)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(140, 8, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, utils.FormatRupiah(sheet.GrandTotal()), "T", 0, "R", false, 0, "")
	pdf.Ln(12)

	if len(d.Warnings) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		for _, w := range d.Warnings {
			pdf.MultiCell(0, 5, "Perhatian: "+w, "", "", false)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Harap periksa kembali rincian di atas sebelum invoice difinalkan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", safeCode(d.Booking), utils.SafeFilenamePart(d.Booking.CustomerName))
	return buf.Bytes(), filename, nil
}

func safeCode(b models.Booking) string {
	code := strings.TrimSpace(b.Code)
	if code == "" {
		code = fmt.Sprintf("%d", b.ID)
	}
	return utils.SafeFilenamePart(code)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
