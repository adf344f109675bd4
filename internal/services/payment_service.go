package services

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/google/uuid"
)

var validPaymentMethods = map[string]bool{
	"cash":     true,
	"transfer": true,
	"card":     true,
}

// PaymentService records ledger entries and reports the outstanding balance
// against the computed invoice total.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	InvoiceSvc  InvoiceService
	RequestID   string
	Session     domain.SessionContext
}

// Record validates and stores one payment against a booking. A missing
// reference gets a generated one so bank reconciliation always has a handle.
func (s PaymentService) Record(e models.LedgerEntry) (models.LedgerEntry, error) {
	if e.BookingID <= 0 {
		return e, domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}
	if e.Amount <= 0 {
		return e, domain.ValidationError{Field: "amount", Msg: "nominal harus lebih dari 0"}
	}
	e.Method = strings.ToLower(strings.TrimSpace(e.Method))
	if !validPaymentMethods[e.Method] {
		return e, domain.ValidationError{Field: "method", Msg: "harus cash/transfer/card"}
	}

	if _, err := s.BookingRepo.GetByID(e.BookingID); err != nil {
		return e, err
	}

	if strings.TrimSpace(e.Reference) == "" {
		e.Reference = "PAY-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if strings.TrimSpace(e.PaidAt) == "" {
		e.PaidAt = utils.FormatDateTime(time.Now())
	}

	id, err := s.PaymentRepo.Create(e)
	if err != nil {
		return e, err
	}
	e.ID = id

	utils.LogEvent(s.RequestID, "payment", "record",
		fmt.Sprintf("booking_id=%d amount=%s ref=%s%s",
			e.BookingID, utils.FormatMoney(e.Amount), e.Reference, sessionTag(s.Session)))
	return e, nil
}

func (s PaymentService) Void(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := s.PaymentRepo.Void(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "payment", "void", fmt.Sprintf("id=%d%s", id, sessionTag(s.Session)))
	return nil
}

// Ledger builds the booking statement: invoice total from the shared cost
// sheet, paid amount, and outstanding balance.
func (s PaymentService) Ledger(bookingID int64) (models.LedgerSummary, error) {
	if bookingID <= 0 {
		return models.LedgerSummary{}, domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}

	sheet, _, err := s.InvoiceSvc.Quote(bookingID)
	if err != nil {
		return models.LedgerSummary{}, err
	}
	entries, err := s.PaymentRepo.ListByBooking(bookingID)
	if err != nil {
		return models.LedgerSummary{}, err
	}
	paid, err := s.PaymentRepo.PaidTotal(bookingID)
	if err != nil {
		return models.LedgerSummary{}, err
	}

	total := sheet.GrandTotal()
	return models.LedgerSummary{
		BookingID:    bookingID,
		InvoiceTotal: total,
		Paid:         pricing.RoundMinor(paid),
		Balance:      pricing.RoundMinor(total - paid),
		Entries:      entries,
	}, nil
}
