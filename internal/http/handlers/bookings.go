package handlers

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
}

func invoiceService(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/bookings?status=&page=&page_size=
func GetBookings(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	repo := repositories.BookingRepository{}
	bookings, total, err := repo.List(c.Query("status"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": domain.Pagination{Page: page, PageSize: pageSize, Total: total},
	})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := bookingService(c).Detail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	created, warnings, err := bookingService(c).Create(b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	resp := gin.H{"booking": created}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusCreated, resp)
}

type bookingUpdatePayload struct {
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	DepartureDate *string `json:"departure_date"`
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p bookingUpdatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	upd := models.BookingUpdate{
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Status:        p.Status,
		Notes:         p.Notes,
		DepartureDate: p.DepartureDate,
	}
	if err := bookingService(c).Update(id, upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking diperbarui"})
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.BookingRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking dihapus"})
}

// PUT /api/bookings/:id/selections
func SaveBookingSelections(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var sel models.BookingSelections
	if err := c.ShouldBindJSON(&sel); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	if err := bookingService(c).SaveSelections(id, sel); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pilihan paket disimpan"})
}

// GET /api/bookings/:id/quote, the live cost sheet, never persisted.
func GetBookingQuote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	sheet, data, err := invoiceService(c).Quote(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	resp := gin.H{
		"booking_id":  id,
		"code":        data.Booking.Code,
		"lines":       sheet.Lines(),
		"subtotals":   sheet.Subtotals(),
		"grand_total": sheet.GrandTotal(),
	}
	if len(data.Warnings) > 0 {
		resp["warnings"] = data.Warnings
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/bookings/:id/invoice streams the rendered PDF.
func DownloadInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	pdf, filename, err := invoiceService(c).GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id/ledger
func GetBookingLedger(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.PaymentService{
		InvoiceSvc: invoiceService(c),
		RequestID:  middleware.GetRequestID(c),
	}
	summary, err := svc.Ledger(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
