package pricing

import "testing"

func seasonRates() []HotelRate {
	return []HotelRate{
		{HotelID: 1, StartDate: "2025-01-01", EndDate: "2025-01-15", Prices: TierPrices{Adult: 100}},
		{HotelID: 1, StartDate: "2025-01-16", EndDate: "2025-01-31", Prices: TierPrices{Adult: 150}},
	}
}

func TestResolveSeasonContainment(t *testing.T) {
	rates := seasonRates()

	r, ok := ResolveSeason(rates, 1, "", "2025-01-10")
	if !ok || r.Prices.Adult != 100 {
		t.Fatalf("check-in 2025-01-10 harus kena musim pertama, got %+v ok=%v", r, ok)
	}

	r, ok = ResolveSeason(rates, 1, "", "2025-01-20")
	if !ok || r.Prices.Adult != 150 {
		t.Fatalf("check-in 2025-01-20 harus kena musim kedua, got %+v ok=%v", r, ok)
	}

	// boundary dates are inclusive
	if r, ok = ResolveSeason(rates, 1, "", "2025-01-15"); !ok || r.Prices.Adult != 100 {
		t.Fatalf("end_date inclusive, got %+v ok=%v", r, ok)
	}
	if r, ok = ResolveSeason(rates, 1, "", "2025-01-16"); !ok || r.Prices.Adult != 150 {
		t.Fatalf("start_date inclusive, got %+v ok=%v", r, ok)
	}
}

func TestResolveSeasonOutsideAllRanges(t *testing.T) {
	if _, ok := ResolveSeason(seasonRates(), 1, "", "2025-02-01"); ok {
		t.Fatalf("tanggal di luar semua musim tidak boleh resolve")
	}
}

func TestResolveSeasonFirstMatchOnOverlap(t *testing.T) {
	rates := []HotelRate{
		{HotelID: 1, StartDate: "2025-01-01", EndDate: "2025-01-31", Prices: TierPrices{Adult: 100}},
		{HotelID: 1, StartDate: "2025-01-10", EndDate: "2025-01-20", Prices: TierPrices{Adult: 999}},
	}
	r, ok := ResolveSeason(rates, 1, "", "2025-01-15")
	if !ok || r.Prices.Adult != 100 {
		t.Fatalf("overlap harus ambil match pertama, got %+v ok=%v", r, ok)
	}
}

func TestResolveSeasonFiltersHotelAndRoom(t *testing.T) {
	rates := []HotelRate{
		{HotelID: 2, RoomType: "Quad", StartDate: "2025-01-01", EndDate: "2025-01-31", Prices: TierPrices{Adult: 80}},
		{HotelID: 1, RoomType: "Double", StartDate: "2025-01-01", EndDate: "2025-01-31", Prices: TierPrices{Adult: 120}},
		{HotelID: 1, RoomType: "Quad", StartDate: "2025-01-01", EndDate: "2025-01-31", Prices: TierPrices{Adult: 90}},
	}
	r, ok := ResolveSeason(rates, 1, "quad", "2025-01-10")
	if !ok || r.Prices.Adult != 90 {
		t.Fatalf("room filter salah, got %+v ok=%v", r, ok)
	}
}

func TestResolveSeasonDoesNotMutateInput(t *testing.T) {
	rates := seasonRates()
	ResolveSeason(rates, 1, "", "2025-01-10")
	if rates[0].Prices.Adult != 100 || rates[1].Prices.Adult != 150 {
		t.Fatalf("input rates berubah: %+v", rates)
	}
}

func TestResolveSeasonEmptyReference(t *testing.T) {
	if _, ok := ResolveSeason(seasonRates(), 1, "", ""); ok {
		t.Fatalf("reference date kosong tidak boleh resolve")
	}
}

func TestDateOnlyTrimsDatetime(t *testing.T) {
	if got := DateOnly("2025-01-10 14:00:00"); got != "2025-01-10" {
		t.Fatalf("DateOnly = %q", got)
	}
	if got := DateOnly("  2025-01-10"); got != "2025-01-10" {
		t.Fatalf("DateOnly trim = %q", got)
	}
}
