package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) conn() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT id, COALESCE(code,''), COALESCE(package_type,''),
	       COALESCE(customer_name,''), COALESCE(customer_phone,''),
	       COALESCE(agent_id,0),
	       COALESCE(adults,''), COALESCE(children,''), COALESCE(infants,''),
	       COALESCE(DATE_FORMAT(departure_date,'%Y-%m-%d'),''),
	       COALESCE(status,''), COALESCE(notes,''),
	       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
	FROM bookings`

func scanBooking(scan func(...any) error) (models.Booking, error) {
	var b models.Booking
	err := scan(&b.ID, &b.Code, &b.PackageType, &b.CustomerName, &b.CustomerPhone,
		&b.AgentID, &b.AdultsRaw, &b.ChildrenRaw, &b.InfantsRaw,
		&b.DepartureDate, &b.Status, &b.Notes, &b.CreatedAt)
	return b, err
}

func (r BookingRepository) List(status string, page, pageSize int) ([]models.Booking, int, error) {
	db := r.conn()

	where := ""
	args := []any{}
	if strings.TrimSpace(status) != "" {
		where = ` WHERE status=?`
		args = append(args, strings.TrimSpace(status))
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM bookings`+where, args...).Scan(&total); err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := db.Query(bookingSelect+where+` ORDER BY id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, 0, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.conn().QueryRow(bookingSelect+` WHERE id=? LIMIT 1`, id).Scan)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.conn().Exec(`
		INSERT INTO bookings
			(code, package_type, customer_name, customer_phone, agent_id,
			 adults, children, infants, departure_date, status, notes)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.Code, b.PackageType, b.CustomerName, b.CustomerPhone, nullIfZero(b.AgentID),
		b.AdultsRaw, b.ChildrenRaw, b.InfantsRaw,
		intdb.NullIfEmpty(b.DepartureDate), b.Status, intdb.NullIfEmpty(b.Notes))
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

func (r BookingRepository) Update(id int64, upd models.BookingUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.CustomerName != nil {
		sets = append(sets, "customer_name=?")
		args = append(args, *upd.CustomerName)
	}
	if upd.CustomerPhone != nil {
		sets = append(sets, "customer_phone=?")
		args = append(args, *upd.CustomerPhone)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *upd.Status)
	}
	if upd.Notes != nil {
		sets = append(sets, "notes=?")
		args = append(args, intdb.NullIfEmpty(*upd.Notes))
	}
	if upd.DepartureDate != nil {
		sets = append(sets, "departure_date=?")
		args = append(args, intdb.NullIfEmpty(*upd.DepartureDate))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.conn().Exec(`UPDATE bookings SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// Delete removes the booking and its child rows in one transaction so a
// failure partway cannot orphan selections.
func (r BookingRepository) Delete(id int64) error {
	tx, err := r.conn().Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(`DELETE FROM booking_hotels WHERE booking_id=?`, id); err != nil {
		return domain.InternalError{Err: err}
	}
	if _, err := tx.Exec(`DELETE FROM booking_services WHERE booking_id=?`, id); err != nil {
		return domain.InternalError{Err: err}
	}
	res, err := tx.Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	committed = true
	return nil
}

// GetSelections loads everything the customer picked: hotel stays, the
// per-category service picks, and the aggregate visa/flight choices stored
// on the booking row itself.
func (r BookingRepository) GetSelections(bookingID int64) (models.BookingSelections, error) {
	db := r.conn()
	var sel models.BookingSelections

	rows, err := db.Query(`
		SELECT bh.hotel_id, COALESCE(h.name,''), COALESCE(bh.room_type,''),
		       COALESCE(DATE_FORMAT(bh.check_in,'%Y-%m-%d'),''),
		       COALESCE(DATE_FORMAT(bh.check_out,'%Y-%m-%d'),''),
		       COALESCE(bh.nights,0)
		FROM booking_hotels bh
		LEFT JOIN hotels h ON h.id = bh.hotel_id
		WHERE bh.booking_id=? ORDER BY bh.id`, bookingID)
	if err != nil {
		return sel, domain.InternalError{Err: err}
	}
	defer rows.Close()
	sel.Hotels = []pricing.HotelSelection{}
	for rows.Next() {
		var hs pricing.HotelSelection
		if err := rows.Scan(&hs.HotelID, &hs.HotelName, &hs.RoomType, &hs.CheckIn, &hs.CheckOut, &hs.Nights); err != nil {
			return sel, domain.InternalError{Err: err}
		}
		sel.Hotels = append(sel.Hotels, hs)
	}
	if err := rows.Err(); err != nil {
		return sel, domain.InternalError{Err: err}
	}

	svcRows, err := db.Query(`
		SELECT COALESCE(category,''), COALESCE(item_id,0), COALESCE(label,''), COALESCE(self_arranged,0)
		FROM booking_services WHERE booking_id=? ORDER BY id`, bookingID)
	if err != nil {
		return sel, domain.InternalError{Err: err}
	}
	defer svcRows.Close()
	sel.Transport = []pricing.ServiceSelection{}
	sel.Food = []pricing.ServiceSelection{}
	sel.Ziarat = []pricing.ServiceSelection{}
	for svcRows.Next() {
		var category string
		var s pricing.ServiceSelection
		var selfArranged int
		if err := svcRows.Scan(&category, &s.ItemID, &s.Label, &selfArranged); err != nil {
			return sel, domain.InternalError{Err: err}
		}
		s.SelfArranged = selfArranged != 0
		switch category {
		case pricing.CategoryTransport:
			sel.Transport = append(sel.Transport, s)
		case pricing.CategoryFood:
			sel.Food = append(sel.Food, s)
		case pricing.CategoryZiarat:
			sel.Ziarat = append(sel.Ziarat, s)
		}
	}
	if err := svcRows.Err(); err != nil {
		return sel, domain.InternalError{Err: err}
	}

	var visaID, flightID int64
	var visaSelf, flightSelf int
	err = db.QueryRow(`
		SELECT COALESCE(visa_type_id,0), COALESCE(visa_self_arranged,0),
		       COALESCE(flight_id,0), COALESCE(flight_self_arranged,0)
		FROM bookings WHERE id=? LIMIT 1`, bookingID).
		Scan(&visaID, &visaSelf, &flightID, &flightSelf)
	if err != nil && err != sql.ErrNoRows {
		return sel, domain.InternalError{Err: err}
	}
	sel.Visa = pricing.ServiceSelection{ItemID: visaID, SelfArranged: visaSelf != 0}
	sel.Flight = pricing.ServiceSelection{ItemID: flightID, SelfArranged: flightSelf != 0}

	return sel, nil
}

// SaveSelections replaces the booking's selections wholesale; the form always
// posts the full set so partial merges are not needed. The whole sync runs in
// one transaction: either every table reflects the new form state or none do.
func (r BookingRepository) SaveSelections(bookingID int64, sel models.BookingSelections) error {
	tx, err := r.conn().Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := saveSelectionsTx(tx, bookingID, sel); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	committed = true
	return nil
}

func saveSelectionsTx(tx *sql.Tx, bookingID int64, sel models.BookingSelections) error {
	if _, err := tx.Exec(`DELETE FROM booking_hotels WHERE booking_id=?`, bookingID); err != nil {
		return domain.InternalError{Err: err}
	}
	for _, hs := range sel.Hotels {
		if hs.HotelID == 0 {
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO booking_hotels (booking_id, hotel_id, room_type, check_in, check_out, nights)
			VALUES (?,?,?,?,?,?)`,
			bookingID, hs.HotelID, intdb.NullIfEmpty(hs.RoomType),
			intdb.NullIfEmpty(hs.CheckIn), intdb.NullIfEmpty(hs.CheckOut), hs.Nights); err != nil {
			return domain.InternalError{Err: err}
		}
	}

	if _, err := tx.Exec(`DELETE FROM booking_services WHERE booking_id=?`, bookingID); err != nil {
		return domain.InternalError{Err: err}
	}
	insert := func(category string, list []pricing.ServiceSelection) error {
		for _, s := range list {
			if s.ItemID == 0 && !s.SelfArranged {
				continue
			}
			if _, err := tx.Exec(`
				INSERT INTO booking_services (booking_id, category, item_id, label, self_arranged)
				VALUES (?,?,?,?,?)`,
				bookingID, category, s.ItemID, intdb.NullIfEmpty(s.Label), boolToInt(s.SelfArranged)); err != nil {
				return domain.InternalError{Err: err}
			}
		}
		return nil
	}
	if err := insert(pricing.CategoryTransport, sel.Transport); err != nil {
		return err
	}
	if err := insert(pricing.CategoryFood, sel.Food); err != nil {
		return err
	}
	if err := insert(pricing.CategoryZiarat, sel.Ziarat); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE bookings SET visa_type_id=?, visa_self_arranged=?, flight_id=?, flight_self_arranged=?
		WHERE id=?`,
		nullIfZero(sel.Visa.ItemID), boolToInt(sel.Visa.SelfArranged),
		nullIfZero(sel.Flight.ItemID), boolToInt(sel.Flight.SelfArranged), bookingID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func nullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}
