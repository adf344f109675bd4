package handlers

import (
	"net/http"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

type hotelPayload struct {
	Name      string `json:"name" binding:"required"`
	City      string `json:"city" binding:"required"`
	Stars     int    `json:"stars"`
	Distance  string `json:"distance"`
	RoomTypes string `json:"room_types"`
	Active    *bool  `json:"active"`
}

// GET /api/hotels?city=Makkah
func GetHotels(c *gin.Context) {
	repo := repositories.CatalogRepository{}
	hotels, err := repo.ListHotels(c.Query("city"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GET /api/hotels/:id
func GetHotelByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepository{}
	hotel, err := repo.GetHotelByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// POST /api/hotels
func CreateHotel(c *gin.Context) {
	var p hotelPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	repo := repositories.CatalogRepository{}
	id, err := repo.CreateHotel(models.Hotel{
		Name: strings.TrimSpace(p.Name), City: strings.TrimSpace(p.City),
		Stars: p.Stars, Distance: p.Distance, RoomTypes: p.RoomTypes, Active: active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/hotels/:id
func UpdateHotel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p hotelPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	repo := repositories.CatalogRepository{}
	if err := repo.UpdateHotel(id, models.Hotel{
		Name: strings.TrimSpace(p.Name), City: strings.TrimSpace(p.City),
		Stars: p.Stars, Distance: p.Distance, RoomTypes: p.RoomTypes, Active: active,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel diperbarui"})
}

// DELETE /api/hotels/:id
func DeleteHotel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepository{}
	if err := repo.DeleteHotel(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel dihapus"})
}

type hotelRatePayload struct {
	RoomType  string  `json:"room_type"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Adult     float64 `json:"adult_price"`
	Child     float64 `json:"child_price"`
	Infant    float64 `json:"infant_price"`
}

// GET /api/hotels/:id/rates
func GetHotelRates(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepository{}
	rates, err := repo.ListHotelRates(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}

// POST /api/hotels/:id/rates
func CreateHotelRate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p hotelRatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	if p.Adult < 0 || p.Child < 0 || p.Infant < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "harga tidak boleh negatif", nil)
		return
	}
	if pricing.DateOnly(p.EndDate) < pricing.DateOnly(p.StartDate) {
		respondError(c, http.StatusBadRequest, "validation_error", "end_date sebelum start_date", nil)
		return
	}

	repo := repositories.CatalogRepository{}
	rateID, err := repo.CreateHotelRate(pricing.HotelRate{
		HotelID:   id,
		RoomType:  p.RoomType,
		StartDate: pricing.DateOnly(p.StartDate),
		EndDate:   pricing.DateOnly(p.EndDate),
		Prices:    pricing.TierPrices{Adult: p.Adult, Child: p.Child, Infant: p.Infant},
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": rateID})
}

// DELETE /api/hotels/:id/rates/:rateId
func DeleteHotelRate(c *gin.Context) {
	rateID, err := parseID(c.Param("rateId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_id", "id rate tidak valid", nil)
		return
	}
	repo := repositories.CatalogRepository{}
	if err := repo.DeleteHotelRate(rateID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rate dihapus"})
}
