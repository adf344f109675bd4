package repositories

import (
	"testing"

	"backoffice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaidTotalSkipsVoided(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COALESCE").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(450.5))

	repo := PaymentRepository{DB: db}
	total, err := repo.PaidTotal(5)
	if err != nil {
		t.Fatalf("PaidTotal returned error: %v", err)
	}
	if total != 450.5 {
		t.Fatalf("total = %v, want 450.5", total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVoidMissingEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE payments SET voided=1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PaymentRepository{DB: db}
	if err := repo.Void(99); !domain.IsNotFound(err) {
		t.Fatalf("void id tak dikenal harus not found, got %v", err)
	}
}

func TestListByBookingScansEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "booking_id", "amount", "method", "reference", "paid_at", "notes", "voided",
	}).
		AddRow(1, 5, 100.0, "cash", "PAY-A", "2025-01-01 09:00:00", "", 0).
		AddRow(2, 5, 200.0, "transfer", "PAY-B", "2025-01-02 09:00:00", "dp kedua", 1)
	mock.ExpectQuery("SELECT id, booking_id").WithArgs(int64(5)).WillReturnRows(rows)

	repo := PaymentRepository{DB: db}
	entries, err := repo.ListByBooking(5)
	if err != nil {
		t.Fatalf("ListByBooking returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[1].Voided {
		t.Fatalf("voided flag hilang: %+v", entries[1])
	}
}
