package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
)

// CatalogRepository serves the pricing catalogs: hotels with seasonal rates,
// flat per-person catalogs (food/ziarat/transport), visa fees and flight fares.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) conn() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CatalogRepository) ListHotels(city string) ([]models.Hotel, error) {
	query := `
		SELECT id, COALESCE(name,''), COALESCE(city,''), COALESCE(stars,0),
		       COALESCE(distance,''), COALESCE(room_types,''), COALESCE(active,1),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM hotels`
	args := []any{}
	if strings.TrimSpace(city) != "" {
		query += ` WHERE city = ?`
		args = append(args, strings.TrimSpace(city))
	}
	query += ` ORDER BY city, name`

	rows, err := r.conn().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		var active int
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Stars, &h.Distance, &h.RoomTypes, &active, &h.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		h.Active = active != 0
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r CatalogRepository) GetHotelByID(id int64) (models.Hotel, error) {
	var h models.Hotel
	var active int
	err := r.conn().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(city,''), COALESCE(stars,0),
		       COALESCE(distance,''), COALESCE(room_types,''), COALESCE(active,1),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM hotels WHERE id=? LIMIT 1`, id).
		Scan(&h.ID, &h.Name, &h.City, &h.Stars, &h.Distance, &h.RoomTypes, &active, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return h, domain.NotFoundError{Resource: "hotel"}
	}
	if err != nil {
		return h, domain.InternalError{Err: err}
	}
	h.Active = active != 0
	return h, nil
}

func (r CatalogRepository) CreateHotel(h models.Hotel) (int64, error) {
	res, err := r.conn().Exec(`
		INSERT INTO hotels (name, city, stars, distance, room_types, active)
		VALUES (?,?,?,?,?,?)`,
		h.Name, h.City, h.Stars, intdb.NullIfEmpty(h.Distance), intdb.NullIfEmpty(h.RoomTypes), boolToInt(h.Active))
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

func (r CatalogRepository) UpdateHotel(id int64, h models.Hotel) error {
	res, err := r.conn().Exec(`
		UPDATE hotels SET name=?, city=?, stars=?, distance=?, room_types=?, active=?
		WHERE id=?`,
		h.Name, h.City, h.Stars, intdb.NullIfEmpty(h.Distance), intdb.NullIfEmpty(h.RoomTypes), boolToInt(h.Active), id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}

func (r CatalogRepository) DeleteHotel(id int64) error {
	res, err := r.conn().Exec(`DELETE FROM hotels WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}

// ListHotelRates returns seasonal rate rows in stable id order; the resolver
// relies on that order for its first-match rule.
func (r CatalogRepository) ListHotelRates(hotelID int64) ([]pricing.HotelRate, error) {
	query := `
		SELECT hotel_id, COALESCE(room_type,''),
		       COALESCE(DATE_FORMAT(start_date,'%Y-%m-%d'),''),
		       COALESCE(DATE_FORMAT(end_date,'%Y-%m-%d'),''),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0)
		FROM hotel_rates`
	args := []any{}
	if hotelID > 0 {
		query += ` WHERE hotel_id=?`
		args = append(args, hotelID)
	}
	query += ` ORDER BY id`

	rows, err := r.conn().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []pricing.HotelRate{}
	for rows.Next() {
		var hr pricing.HotelRate
		if err := rows.Scan(&hr.HotelID, &hr.RoomType, &hr.StartDate, &hr.EndDate,
			&hr.Prices.Adult, &hr.Prices.Child, &hr.Prices.Infant); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, hr)
	}
	return out, rows.Err()
}

func (r CatalogRepository) CreateHotelRate(hr pricing.HotelRate) (int64, error) {
	res, err := r.conn().Exec(`
		INSERT INTO hotel_rates (hotel_id, room_type, start_date, end_date, adult_price, child_price, infant_price)
		VALUES (?,?,?,?,?,?,?)`,
		hr.HotelID, intdb.NullIfEmpty(hr.RoomType), hr.StartDate, hr.EndDate,
		hr.Prices.Adult, hr.Prices.Child, hr.Prices.Infant)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

func (r CatalogRepository) DeleteHotelRate(id int64) error {
	res, err := r.conn().Exec(`DELETE FROM hotel_rates WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "hotel rate"}
	}
	return nil
}

// ListServiceRates returns the flat per-person catalog for one category
// (food, ziarat, transport).
func (r CatalogRepository) ListServiceRates(category string) ([]pricing.ServiceRate, error) {
	rows, err := r.conn().Query(`
		SELECT id, COALESCE(label,''),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0)
		FROM catalog_items
		WHERE category=? AND COALESCE(active,1)=1
		ORDER BY id`, category)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []pricing.ServiceRate{}
	for rows.Next() {
		var sr pricing.ServiceRate
		if err := rows.Scan(&sr.ItemID, &sr.Label, &sr.Prices.Adult, &sr.Prices.Child, &sr.Prices.Infant); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r CatalogRepository) CreateServiceRate(category string, sr pricing.ServiceRate) (int64, error) {
	res, err := r.conn().Exec(`
		INSERT INTO catalog_items (category, label, adult_price, child_price, infant_price, active)
		VALUES (?,?,?,?,?,1)`,
		category, sr.Label, sr.Prices.Adult, sr.Prices.Child, sr.Prices.Infant)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

func (r CatalogRepository) DeleteServiceRate(category string, id int64) error {
	res, err := r.conn().Exec(`DELETE FROM catalog_items WHERE id=? AND category=?`, id, category)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "catalog item"}
	}
	return nil
}

func (r CatalogRepository) ListVisaFees() ([]models.VisaFee, error) {
	rows, err := r.conn().Query(`
		SELECT id, COALESCE(visa_type,''),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0)
		FROM visa_fees ORDER BY id`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.VisaFee{}
	for rows.Next() {
		var v models.VisaFee
		if err := rows.Scan(&v.ID, &v.VisaType, &v.Adult, &v.Child, &v.Infant); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetVisaFee loads the single tier-price object for one visa type.
func (r CatalogRepository) GetVisaFee(id int64) (*pricing.TierPrices, string, error) {
	var tp pricing.TierPrices
	var visaType string
	err := r.conn().QueryRow(`
		SELECT COALESCE(visa_type,''),
		       COALESCE(adult_price,0), COALESCE(child_price,0), COALESCE(infant_price,0)
		FROM visa_fees WHERE id=? LIMIT 1`, id).
		Scan(&visaType, &tp.Adult, &tp.Child, &tp.Infant)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	return &tp, visaType, nil
}

func (r CatalogRepository) UpsertVisaFee(v models.VisaFee) (int64, error) {
	if v.ID > 0 {
		_, err := r.conn().Exec(`
			UPDATE visa_fees SET visa_type=?, adult_price=?, child_price=?, infant_price=? WHERE id=?`,
			v.VisaType, v.Adult, v.Child, v.Infant, v.ID)
		if err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return v.ID, nil
	}
	res, err := r.conn().Exec(`
		INSERT INTO visa_fees (visa_type, adult_price, child_price, infant_price) VALUES (?,?,?,?)`,
		v.VisaType, v.Adult, v.Child, v.Infant)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return res.LastInsertId()
}

// flightFareColumns detects which naming generation the install carries.
// Older schemas used *_fare, newer ones *_price; some have both after a
// half-applied migration, in which case *_price wins per field.
func (r CatalogRepository) flightFareColumns() (hasPrice, hasFare bool) {
	db := r.conn()
	hasPrice = intdb.HasColumn(db, "flight_fares", "adult_price")
	hasFare = intdb.HasColumn(db, "flight_fares", "adult_fare")
	return
}

func (r CatalogRepository) ListFlightFares() ([]pricing.FlightFare, error) {
	// instalasi ticketing-only lama belum punya tabel ini sama sekali
	if !intdb.HasTable(r.conn(), "flight_fares") {
		return []pricing.FlightFare{}, nil
	}

	hasPrice, hasFare := r.flightFareColumns()

	cols := []string{"id", "COALESCE(airline,'')", "COALESCE(sector,'')"}
	if hasPrice {
		cols = append(cols, "adult_price", "child_price", "infant_price")
	}
	if hasFare {
		cols = append(cols, "adult_fare", "child_fare", "infant_fare")
	}
	query := fmt.Sprintf(`SELECT %s FROM flight_fares ORDER BY id`, strings.Join(cols, ", "))

	rows, err := r.conn().Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []pricing.FlightFare{}
	for rows.Next() {
		var f pricing.FlightFare
		var price, fare [3]sql.NullFloat64
		dests := []any{&f.ID, &f.Airline, &f.Sector}
		if hasPrice {
			dests = append(dests, &price[0], &price[1], &price[2])
		}
		if hasFare {
			dests = append(dests, &fare[0], &fare[1], &fare[2])
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		f.AdultPrice, f.ChildPrice, f.InfantPrice = nullableF(price[0]), nullableF(price[1]), nullableF(price[2])
		f.AdultFare, f.ChildFare, f.InfantFare = nullableF(fare[0]), nullableF(fare[1]), nullableF(fare[2])
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r CatalogRepository) GetFlightFare(id int64) (*pricing.FlightFare, error) {
	fares, err := r.ListFlightFares()
	if err != nil {
		return nil, err
	}
	for i := range fares {
		if fares[i].ID == id {
			return &fares[i], nil
		}
	}
	return nil, nil
}

func (r CatalogRepository) CreateFlightFare(f pricing.FlightFare) (int64, error) {
	hasPrice, hasFare := r.flightFareColumns()
	tier := f.Tier()

	switch {
	case hasPrice:
		res, err := r.conn().Exec(`
			INSERT INTO flight_fares (airline, sector, adult_price, child_price, infant_price)
			VALUES (?,?,?,?,?)`,
			f.Airline, f.Sector, tier.Adult, tier.Child, tier.Infant)
		if err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return res.LastInsertId()
	case hasFare:
		res, err := r.conn().Exec(`
			INSERT INTO flight_fares (airline, sector, adult_fare, child_fare, infant_fare)
			VALUES (?,?,?,?,?)`,
			f.Airline, f.Sector, tier.Adult, tier.Child, tier.Infant)
		if err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return res.LastInsertId()
	default:
		return 0, domain.InternalError{Msg: "tabel flight_fares tidak punya kolom harga"}
	}
}

func (r CatalogRepository) DeleteFlightFare(id int64) error {
	res, err := r.conn().Exec(`DELETE FROM flight_fares WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "flight fare"}
	}
	return nil
}

func nullableF(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
