package handlers

import (
	"net/http"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		InvoiceSvc: invoiceService(c),
		RequestID:  middleware.GetRequestID(c),
		Session:    middleware.GetSession(c),
	}
}

type paymentPayload struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method" binding:"required"`
	Reference string  `json:"reference"`
	PaidAt    string  `json:"paid_at"`
	Notes     string  `json:"notes"`
}

// POST /api/payments
func RecordPayment(c *gin.Context) {
	var p paymentPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	entry, err := paymentService(c).Record(models.LedgerEntry{
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		PaidAt:    p.PaidAt,
		Notes:     p.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": entry})
}

// GET /api/payments?booking_id=
func GetPayments(c *gin.Context) {
	bookingID, err := parseID(c.Query("booking_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_id", "booking_id wajib diisi", nil)
		return
	}
	repo := repositories.PaymentRepository{}
	entries, err := repo.ListByBooking(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": entries})
}

// POST /api/payments/:id/void, koreksi tanpa menghapus jejak.
func VoidPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := paymentService(c).Void(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pembayaran dibatalkan"})
}
