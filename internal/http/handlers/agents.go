package handlers

import (
	"net/http"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func agentService(c *gin.Context) services.AgentService {
	return services.AgentService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/agents
func GetAgents(c *gin.Context) {
	repo := repositories.AgentRepository{}
	agents, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// GET /api/agents/:id
func GetAgentByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	repo := repositories.AgentRepository{}
	agent, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// POST /api/agents
func RegisterAgent(c *gin.Context) {
	var reg services.AgentRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	agent, err := agentService(c).Register(reg)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agent": agent})
}

type agentUpdatePayload struct {
	AgencyName    *string  `json:"agency_name"`
	ContactPerson *string  `json:"contact_person"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	CommissionPct *float64 `json:"commission_pct"`
	Active        *bool    `json:"active"`
}

// PUT /api/agents/:id
func UpdateAgent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p agentUpdatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload tidak valid: "+err.Error(), nil)
		return
	}
	upd := models.AgentUpdate{
		AgencyName:    p.AgencyName,
		ContactPerson: p.ContactPerson,
		Phone:         p.Phone,
		Email:         p.Email,
		CommissionPct: p.CommissionPct,
		Active:        p.Active,
	}
	if err := agentService(c).Update(id, upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "agen diperbarui"})
}

// POST /api/agents/:id/deactivate
func DeactivateAgent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := agentService(c).Deactivate(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "agen dinonaktifkan"})
}
