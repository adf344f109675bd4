package models

// Agent is a registered partner agency/sub-agent. PasswordHash stores the
// bcrypt hash for the external portal auth system; no login happens here.
type Agent struct {
	ID            int64   `json:"id"`
	AgencyName    string  `json:"agency_name"`
	ContactPerson string  `json:"contact_person"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	CommissionPct float64 `json:"commission_pct"`
	Active        bool    `json:"active"`
	PasswordHash  string  `json:"-"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// AgentUpdate supports PATCH-style updates via key presence.
type AgentUpdate struct {
	AgencyName    *string
	ContactPerson *string
	Phone         *string
	Email         *string
	CommissionPct *float64
	Active        *bool
}
