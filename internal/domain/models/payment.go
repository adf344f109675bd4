package models

// LedgerEntry is one payment recorded against a booking.
type LedgerEntry struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"` // cash / transfer / card
	Reference string  `json:"reference"`
	PaidAt    string  `json:"paid_at"`
	Notes     string  `json:"notes,omitempty"`
	Voided    bool    `json:"voided,omitempty"`
}

// LedgerSummary combines the booking's computed invoice total with what has
// been paid so far. InvoiceTotal always comes from the shared cost sheet so
// the balance can never disagree with the printed invoice.
type LedgerSummary struct {
	BookingID    int64         `json:"booking_id"`
	InvoiceTotal float64       `json:"invoice_total"`
	Paid         float64       `json:"paid"`
	Balance      float64       `json:"balance"`
	Entries      []LedgerEntry `json:"entries"`
}
