package handlers

import (
	"net/http"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

// serviceCategory validates the :category path segment. Hanya katalog flat
// per-orang yang lewat sini; hotel dan flight punya endpoint sendiri.
func serviceCategory(c *gin.Context) (string, bool) {
	cat := strings.ToLower(c.Param("category"))
	switch cat {
	case pricing.CategoryTransport, pricing.CategoryFood, pricing.CategoryZiarat:
		return cat, true
	}
	respondError(c, http.StatusBadRequest, "invalid_category", "kategori katalog tidak dikenal: "+cat, nil)
	return "", false
}

// GET /api/catalogs/:category
func GetServiceRates(c *gin.Context) {
	cat, ok := serviceCategory(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepository{}
	rates, err := repo.ListServiceRates(cat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat, "items": rates})
}

type serviceRatePayload struct {
	Label  string  `json:"label" binding:"required"`
	Adult  float64 `json:"adult_price"`
	Child  float64 `json:"child_price"`
	Infant float64 `json:"infant_price"`
}

// POST /api/catalogs/:category
func CreateServiceRate(c *gin.Context) {
	cat, ok := serviceCategory(c)
	if !ok {
		return
	}
	var p serviceRatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	if p.Adult < 0 || p.Child < 0 || p.Infant < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "harga tidak boleh negatif", nil)
		return
	}
	repo := repositories.CatalogRepository{}
	id, err := repo.CreateServiceRate(cat, pricing.ServiceRate{
		Label:  strings.TrimSpace(p.Label),
		Prices: pricing.TierPrices{Adult: p.Adult, Child: p.Child, Infant: p.Infant},
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/catalogs/:category/:id
func DeleteServiceRate(c *gin.Context) {
	cat, ok := serviceCategory(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepository{}
	if err := repo.DeleteServiceRate(cat, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item katalog dihapus"})
}

// GET /api/visa-fees
func GetVisaFees(c *gin.Context) {
	repo := repositories.CatalogRepository{}
	fees, err := repo.ListVisaFees()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"visa_fees": fees})
}

type visaFeePayload struct {
	VisaType string  `json:"visa_type" binding:"required"`
	Adult    float64 `json:"adult"`
	Child    float64 `json:"child"`
	Infant   float64 `json:"infant"`
}

// PUT /api/visa-fees
func UpsertVisaFee(c *gin.Context) {
	var p visaFeePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	if p.Adult < 0 || p.Child < 0 || p.Infant < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "biaya visa tidak boleh negatif", nil)
		return
	}
	repo := repositories.CatalogRepository{}
	id, err := repo.UpsertVisaFee(models.VisaFee{
		VisaType: strings.TrimSpace(p.VisaType),
		Adult:    p.Adult, Child: p.Child, Infant: p.Infant,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GET /api/flights
func GetFlightFares(c *gin.Context) {
	repo := repositories.CatalogRepository{}
	fares, err := repo.ListFlightFares()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": fares})
}

// POST /api/flights
func CreateFlightFare(c *gin.Context) {
	var f pricing.FlightFare
	if err := c.ShouldBindJSON(&f); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	if strings.TrimSpace(f.Airline) == "" || strings.TrimSpace(f.Sector) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "airline dan sector wajib diisi", nil)
		return
	}
	repo := repositories.CatalogRepository{}
	id, err := repo.CreateFlightFare(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/flights/:id
func DeleteFlightFare(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepository{}
	if err := repo.DeleteFlightFare(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fare dihapus"})
}
