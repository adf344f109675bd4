package repositories

import (
	"errors"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSaveSelectionsRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM booking_hotels").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking_hotels").WillReturnError(errors.New("koneksi putus"))
	mock.ExpectRollback()

	repo := BookingRepository{DB: db}
	err = repo.SaveSelections(7, models.BookingSelections{
		Hotels: []pricing.HotelSelection{{HotelID: 11, CheckIn: "2025-01-10", CheckOut: "2025-01-14", Nights: 4}},
	})
	if err == nil {
		t.Fatal("insert gagal harus mengembalikan error")
	}
	// no commit: the wiped booking_hotels rows must not survive the failure
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteBookingRunsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM booking_hotels").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM booking_services").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := BookingRepository{DB: db}
	if err := repo.Delete(5); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteBookingMissingRowRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM booking_hotels").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM booking_services").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := BookingRepository{DB: db}
	if err := repo.Delete(99); !domain.IsNotFound(err) {
		t.Fatalf("booking hilang harus NotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
