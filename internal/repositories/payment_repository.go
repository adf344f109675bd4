package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// PaymentRepository stores ledger entries per booking. An entry is never
// deleted, only voided, so the payment history on the booking stays auditable.
type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) conn() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentRepository) ListByBooking(bookingID int64) ([]models.LedgerEntry, error) {
	rows, err := r.conn().Query(`
		SELECT id, booking_id, COALESCE(amount,0), COALESCE(method,''),
		       COALESCE(reference,''),
		       COALESCE(DATE_FORMAT(paid_at,'%Y-%m-%d %H:%i:%s'),''),
		       COALESCE(notes,''), COALESCE(voided,0)
		FROM payments WHERE booking_id=? ORDER BY id`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.LedgerEntry{}
	for rows.Next() {
		var e models.LedgerEntry
		var voided int
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Amount, &e.Method, &e.Reference,
			&e.PaidAt, &e.Notes, &voided); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		e.Voided = voided != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r PaymentRepository) Create(e models.LedgerEntry) (int64, error) {
	res, err := r.conn().Exec(`
		INSERT INTO payments (booking_id, amount, method, reference, paid_at, notes)
		VALUES (?,?,?,?,?,?)`,
		e.BookingID, e.Amount, e.Method, e.Reference,
		intdb.NullIfEmpty(e.PaidAt), intdb.NullIfEmpty(e.Notes))
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

func (r PaymentRepository) Void(id int64) error {
	res, err := r.conn().Exec(`UPDATE payments SET voided=1 WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payment"}
	}
	return nil
}

// PaidTotal sums non-voided entries for a booking.
func (r PaymentRepository) PaidTotal(bookingID int64) (float64, error) {
	var total float64
	err := r.conn().QueryRow(`
		SELECT COALESCE(SUM(amount),0) FROM payments
		WHERE booking_id=? AND COALESCE(voided,0)=0`, bookingID).Scan(&total)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return total, nil
}
