package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectFlightColumns(mock sqlmock.Sqlmock, hasPrice, hasFare bool) {
	mock.ExpectQuery("information_schema.tables").
		WithArgs("flight_fares").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("flight_fares"))

	priceRows := sqlmock.NewRows([]string{"column_name"})
	if hasPrice {
		priceRows.AddRow("adult_price")
	}
	mock.ExpectQuery("information_schema.columns").
		WithArgs("flight_fares", "adult_price").WillReturnRows(priceRows)

	fareRows := sqlmock.NewRows([]string{"column_name"})
	if hasFare {
		fareRows.AddRow("adult_fare")
	}
	mock.ExpectQuery("information_schema.columns").
		WithArgs("flight_fares", "adult_fare").WillReturnRows(fareRows)
}

func TestListFlightFaresLegacyColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// install lama: hanya kolom *_fare
	expectFlightColumns(mock, false, true)
	mock.ExpectQuery("SELECT id, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "airline", "sector", "adult_fare", "child_fare", "infant_fare",
		}).AddRow(1, "Saudia", "CGK-JED", 900.0, 700.0, nil))

	repo := CatalogRepository{DB: db}
	fares, err := repo.ListFlightFares()
	if err != nil {
		t.Fatalf("ListFlightFares returned error: %v", err)
	}
	if len(fares) != 1 {
		t.Fatalf("expected 1 fare, got %d", len(fares))
	}

	tier := fares[0].Tier()
	if tier.Adult != 900 || tier.Child != 700 || tier.Infant != 0 {
		t.Fatalf("legacy fare mapping salah: %+v", tier)
	}
	if fares[0].AdultPrice != nil {
		t.Fatalf("kolom *_price tidak ada, pointer harus nil")
	}
}

func TestListFlightFaresModernColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectFlightColumns(mock, true, false)
	mock.ExpectQuery("SELECT id, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "airline", "sector", "adult_price", "child_price", "infant_price",
		}).AddRow(2, "Garuda", "SUB-JED", 950.0, nil, nil))

	repo := CatalogRepository{DB: db}
	fares, err := repo.ListFlightFares()
	if err != nil {
		t.Fatalf("ListFlightFares returned error: %v", err)
	}
	if got := fares[0].Tier().Adult; got != 950 {
		t.Fatalf("adult price = %v, want 950", got)
	}
}

func TestListFlightFaresMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema.tables").
		WithArgs("flight_fares").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	repo := CatalogRepository{DB: db}
	fares, err := repo.ListFlightFares()
	if err != nil {
		t.Fatalf("tabel hilang harus aman, got %v", err)
	}
	if len(fares) != 0 {
		t.Fatalf("expected kosong, got %d", len(fares))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListHotelRatesStableOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"hotel_id", "room_type", "start_date", "end_date", "adult_price", "child_price", "infant_price",
	}).
		AddRow(1, "Quad", "2025-01-01", "2025-01-15", 100.0, 50.0, 0.0).
		AddRow(1, "Quad", "2025-01-16", "2025-01-31", 150.0, 75.0, 0.0)
	mock.ExpectQuery("SELECT hotel_id").WithArgs(int64(1)).WillReturnRows(rows)

	repo := CatalogRepository{DB: db}
	rates, err := repo.ListHotelRates(1)
	if err != nil {
		t.Fatalf("ListHotelRates returned error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].Prices.Adult != 100 || rates[1].Prices.Adult != 150 {
		t.Fatalf("urutan rates berubah: %+v", rates)
	}
}
