package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestAgentRegisterHashesPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM agents").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO agents").WillReturnResult(sqlmock.NewResult(3, 1))

	svc := AgentService{AgentRepo: repositories.AgentRepository{DB: db}}
	agent, err := svc.Register(AgentRegistration{
		AgencyName:    "Barokah  Travel",
		ContactPerson: "Ust. Salim",
		Email:         "Salim@Barokah.id",
		Password:      "rahasia-banget",
		CommissionPct: 5,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if agent.ID != 3 {
		t.Fatalf("agent id = %d, want 3", agent.ID)
	}
	if agent.AgencyName != "Barokah Travel" {
		t.Fatalf("agency name tidak dinormalisasi: %q", agent.AgencyName)
	}
	if agent.Email != "salim@barokah.id" {
		t.Fatalf("email harus lowercase: %q", agent.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte("rahasia-banget")); err != nil {
		t.Fatalf("password hash tidak cocok: %v", err)
	}
}

func TestAgentRegisterDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM agents").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	svc := AgentService{AgentRepo: repositories.AgentRepository{DB: db}}
	_, err = svc.Register(AgentRegistration{
		AgencyName:    "Dup",
		ContactPerson: "X",
		Email:         "dup@x.id",
		Password:      "12345678",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("duplicate email harus conflict, got %v", err)
	}
}

func TestAgentCommissionRange(t *testing.T) {
	svc := AgentService{}
	_, err := svc.Register(AgentRegistration{
		AgencyName:    "A",
		ContactPerson: "B",
		Email:         "a@b.id",
		Password:      "12345678",
		CommissionPct: 150,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("komisi 150%% harus validation error, got %v", err)
	}
}
