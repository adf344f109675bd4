package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaymentRecordValidation(t *testing.T) {
	svc := PaymentService{}

	if _, err := svc.Record(models.LedgerEntry{BookingID: 0, Amount: 100, Method: "cash"}); !domain.IsValidation(err) {
		t.Fatalf("booking_id 0 harus validation error, got %v", err)
	}
	if _, err := svc.Record(models.LedgerEntry{BookingID: 1, Amount: 0, Method: "cash"}); !domain.IsValidation(err) {
		t.Fatalf("amount 0 harus validation error, got %v", err)
	}
	if _, err := svc.Record(models.LedgerEntry{BookingID: 1, Amount: 100, Method: "bitcoin"}); !domain.IsValidation(err) {
		t.Fatalf("method aneh harus validation error, got %v", err)
	}
}

func TestPaymentRecordGeneratesReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	bookingRows := sqlmock.NewRows([]string{
		"id", "code", "package_type", "customer_name", "customer_phone", "agent_id",
		"adults", "children", "infants", "departure_date", "status", "notes", "created_at",
	}).AddRow(5, "UMR-1", "umrah", "Tester", "0800", 0, "2", "0", "0", "2025-01-10", "confirmed", "", "")
	mock.ExpectQuery("SELECT id, COALESCE").WillReturnRows(bookingRows)
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(7, 1))

	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
	}

	entry, err := svc.Record(models.LedgerEntry{BookingID: 5, Amount: 1500000, Method: "transfer"})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if entry.ID != 7 {
		t.Fatalf("entry id = %d, want 7", entry.ID)
	}
	if entry.Reference == "" || entry.PaidAt == "" {
		t.Fatalf("reference/paid_at harus terisi: %+v", entry)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLedgerBalanceMatchesInvoiceTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, booking_id, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "amount", "method", "reference", "paid_at", "notes", "voided",
		}).AddRow(1, 1, 300.0, "cash", "PAY-X", "2025-01-02 10:00:00", "", 0))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(300.0))

	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		InvoiceSvc:  InvoiceService{Loader: testInvoiceLoader},
	}

	sum, err := svc.Ledger(1)
	if err != nil {
		t.Fatalf("Ledger returned error: %v", err)
	}
	if sum.InvoiceTotal != 800 {
		t.Fatalf("invoice total = %v, want 800", sum.InvoiceTotal)
	}
	if sum.Paid != 300 || sum.Balance != 500 {
		t.Fatalf("paid/balance salah: %+v", sum)
	}
	if got := pricing.RoundMinor(sum.Paid + sum.Balance); got != sum.InvoiceTotal {
		t.Fatalf("paid+balance harus sama dengan total: %v vs %v", got, sum.InvoiceTotal)
	}
}
