package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type AgentRepository struct {
	DB *sql.DB
}

func (r AgentRepository) conn() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const agentSelect = `
	SELECT id, COALESCE(agency_name,''), COALESCE(contact_person,''),
	       COALESCE(phone,''), COALESCE(email,''), COALESCE(commission_pct,0),
	       COALESCE(active,1),
	       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
	FROM agents`

func scanAgent(scan func(...any) error) (models.Agent, error) {
	var a models.Agent
	var active int
	err := scan(&a.ID, &a.AgencyName, &a.ContactPerson, &a.Phone, &a.Email,
		&a.CommissionPct, &active, &a.CreatedAt)
	a.Active = active != 0
	return a, err
}

func (r AgentRepository) List() ([]models.Agent, error) {
	rows, err := r.conn().Query(agentSelect + ` ORDER BY agency_name`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Agent{}
	for rows.Next() {
		a, err := scanAgent(rows.Scan)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AgentRepository) GetByID(id int64) (models.Agent, error) {
	a, err := scanAgent(r.conn().QueryRow(agentSelect+` WHERE id=? LIMIT 1`, id).Scan)
	if err == sql.ErrNoRows {
		return a, domain.NotFoundError{Resource: "agent"}
	}
	if err != nil {
		return a, domain.InternalError{Err: err}
	}
	return a, nil
}

// EmailExists guards duplicate registrations.
func (r AgentRepository) EmailExists(email string) (bool, error) {
	var id int64
	err := r.conn().QueryRow(`SELECT id FROM agents WHERE email=? LIMIT 1`, strings.TrimSpace(email)).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

func (r AgentRepository) Create(a models.Agent) (int64, error) {
	res, err := r.conn().Exec(`
		INSERT INTO agents (agency_name, contact_person, phone, email, commission_pct, active, password_hash)
		VALUES (?,?,?,?,?,?,?)`,
		a.AgencyName, a.ContactPerson, intdb.NullIfEmpty(a.Phone), a.Email,
		a.CommissionPct, boolToInt(a.Active), a.PasswordHash)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

func (r AgentRepository) Update(id int64, upd models.AgentUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.AgencyName != nil {
		sets = append(sets, "agency_name=?")
		args = append(args, *upd.AgencyName)
	}
	if upd.ContactPerson != nil {
		sets = append(sets, "contact_person=?")
		args = append(args, *upd.ContactPerson)
	}
	if upd.Phone != nil {
		sets = append(sets, "phone=?")
		args = append(args, intdb.NullIfEmpty(*upd.Phone))
	}
	if upd.Email != nil {
		sets = append(sets, "email=?")
		args = append(args, *upd.Email)
	}
	if upd.CommissionPct != nil {
		sets = append(sets, "commission_pct=?")
		args = append(args, *upd.CommissionPct)
	}
	if upd.Active != nil {
		sets = append(sets, "active=?")
		args = append(args, boolToInt(*upd.Active))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.conn().Exec(`UPDATE agents SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "agent"}
	}
	return nil
}
