package services

import (
	"fmt"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AgentService registers partner agencies. The stored bcrypt hash is consumed
// by the external portal auth system; no login endpoint lives here.
type AgentService struct {
	AgentRepo repositories.AgentRepository
	RequestID string
}

type AgentRegistration struct {
	AgencyName    string  `json:"agency_name" binding:"required"`
	ContactPerson string  `json:"contact_person" binding:"required"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=8"`
	CommissionPct float64 `json:"commission_pct"`
}

func (s AgentService) Register(reg AgentRegistration) (models.Agent, error) {
	reg.AgencyName = utils.NormalizeSpace(reg.AgencyName)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))

	if reg.CommissionPct < 0 || reg.CommissionPct > 100 {
		return models.Agent{}, domain.ValidationError{Field: "commission_pct", Msg: "harus 0-100"}
	}

	exists, err := s.AgentRepo.EmailExists(reg.Email)
	if err != nil {
		return models.Agent{}, err
	}
	if exists {
		return models.Agent{}, domain.ConflictError{Resource: "agent", Msg: "email sudah terdaftar"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Agent{}, domain.InternalError{Err: err}
	}

	agent := models.Agent{
		AgencyName:    reg.AgencyName,
		ContactPerson: utils.NormalizeSpace(reg.ContactPerson),
		Phone:         strings.TrimSpace(reg.Phone),
		Email:         reg.Email,
		CommissionPct: reg.CommissionPct,
		Active:        true,
		PasswordHash:  string(hash),
	}

	id, err := s.AgentRepo.Create(agent)
	if err != nil {
		return models.Agent{}, err
	}
	agent.ID = id

	utils.LogEvent(s.RequestID, "agent", "register", fmt.Sprintf("id=%d agency=%s", id, agent.AgencyName))
	return agent, nil
}

func (s AgentService) Update(id int64, upd models.AgentUpdate) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if upd.CommissionPct != nil && (*upd.CommissionPct < 0 || *upd.CommissionPct > 100) {
		return domain.ValidationError{Field: "commission_pct", Msg: "harus 0-100"}
	}
	if upd.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*upd.Email))
		upd.Email = &email
	}
	if err := s.AgentRepo.Update(id, upd); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "agent", "update", fmt.Sprintf("id=%d", id))
	return nil
}

// Deactivate keeps the row for history instead of deleting it.
func (s AgentService) Deactivate(id int64) error {
	active := false
	return s.Update(id, models.AgentUpdate{Active: &active})
}
