package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// BookingService manages booking headers and their form selections. Session
// carries the caller's tenant context from the request token; handlers fill
// it in so nothing here reads ambient state.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
	Session     domain.SessionContext
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

var validPackageTypes = map[string]bool{
	"umrah":     true,
	"hajj":      true,
	"ticketing": true,
}

// Create validates and stores a new booking. Traveler counts stay raw; a
// garbage value is reported as a warning, never a rejection, so the operator
// can still save the draft and fix it later.
func (s BookingService) Create(b models.Booking) (models.Booking, []string, error) {
	b.CustomerName = utils.NormalizeSpace(b.CustomerName)
	b.PackageType = strings.ToLower(strings.TrimSpace(b.PackageType))

	if b.CustomerName == "" {
		return b, nil, domain.ValidationError{Field: "customer_name", Msg: "nama customer wajib diisi"}
	}
	if !validPackageTypes[b.PackageType] {
		return b, nil, domain.ValidationError{Field: "package_type", Msg: "harus umrah/hajj/ticketing"}
	}

	_, warnings := pricing.ParseTravelerCounts(b.AdultsRaw, b.ChildrenRaw, b.InfantsRaw)
	for i, f := range warnings {
		warnings[i] = fmt.Sprintf("jumlah %s tidak terbaca, dihitung 0", f)
	}

	// booking dari token agen otomatis tercatat atas nama agen itu
	if b.AgentID == 0 && s.Session.Role == "agent" {
		b.AgentID = int64(s.Session.UserID)
	}

	if strings.TrimSpace(b.Status) == "" {
		b.Status = "draft"
	}
	if strings.TrimSpace(b.Code) == "" {
		b.Code = generateBookingCode(b.PackageType)
	}

	id, err := s.bookings().Create(b)
	if err != nil {
		return b, warnings, err
	}
	b.ID = id

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("id=%d code=%s%s", id, b.Code, sessionTag(s.Session)))
	return b, warnings, nil
}

func (s BookingService) Update(id int64, upd models.BookingUpdate) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if upd.CustomerName != nil {
		name := utils.NormalizeSpace(*upd.CustomerName)
		if name == "" {
			return domain.ValidationError{Field: "customer_name", Msg: "nama customer wajib diisi"}
		}
		upd.CustomerName = &name
	}
	if err := s.bookings().Update(id, upd); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "update", fmt.Sprintf("id=%d", id))
	return nil
}

// SaveSelections normalizes and stores the booking form picks. Nights not
// supplied are derived from check-in/check-out.
func (s BookingService) SaveSelections(bookingID int64, sel models.BookingSelections) error {
	if bookingID <= 0 {
		return domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}
	if _, err := s.bookings().GetByID(bookingID); err != nil {
		return err
	}

	for i := range sel.Hotels {
		hs := &sel.Hotels[i]
		hs.CheckIn = pricing.DateOnly(hs.CheckIn)
		hs.CheckOut = pricing.DateOnly(hs.CheckOut)
		if hs.Nights <= 0 {
			hs.Nights = utils.NightsBetween(hs.CheckIn, hs.CheckOut)
		}
	}

	if err := s.bookings().SaveSelections(bookingID, sel); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "save_selections",
		fmt.Sprintf("booking_id=%d hotels=%d", bookingID, len(sel.Hotels)))
	return nil
}

func (s BookingService) Detail(id int64) (models.BookingDetail, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.BookingDetail{}, err
	}
	sel, err := s.bookings().GetSelections(id)
	if err != nil {
		return models.BookingDetail{}, err
	}
	return models.BookingDetail{Booking: b, Selections: sel}, nil
}

// sessionTag renders the acting user for log lines; empty when anonymous.
func sessionTag(sc domain.SessionContext) string {
	if sc.Anonymous() {
		return ""
	}
	return fmt.Sprintf(" user=%d agency=%d", sc.UserID, sc.AgencyID)
}

func generateBookingCode(packageType string) string {
	prefix := "BK"
	switch packageType {
	case "umrah":
		prefix = "UMR"
	case "hajj":
		prefix = "HAJ"
	case "ticketing":
		prefix = "TKT"
	}
	return fmt.Sprintf("%s-%s", prefix, time.Now().Format("20060102-150405"))
}
