package pricing

import "testing"

func TestHotelLineWeightedNightly(t *testing.T) {
	tc := TravelerCounts{Adults: 2, Children: 1}
	sels := []HotelSelection{{HotelID: 1, HotelName: "Al Safwah", RoomType: "Quad", CheckIn: "2025-01-10", Nights: 3}}
	rates := []HotelRate{{HotelID: 1, RoomType: "Quad", StartDate: "2025-01-01", EndDate: "2025-01-15",
		Prices: TierPrices{Adult: 100, Child: 50}}}

	lines := HotelLines(sels, rates, tc)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	li := lines[0]
	if li.PerNight != 250 {
		t.Fatalf("perNight = %v, want 250", li.PerNight)
	}
	if li.Net != 750 {
		t.Fatalf("net = %v, want 750", li.Net)
	}
	if li.Unpriced {
		t.Fatalf("line should be priced")
	}
}

func TestHotelLineUnpricedStillRenders(t *testing.T) {
	tc := TravelerCounts{Adults: 2}
	sels := []HotelSelection{{HotelID: 1, HotelName: "Al Safwah", CheckIn: "2025-02-01", Nights: 3}}

	lines := HotelLines(sels, seasonRates(), tc)
	if len(lines) != 1 {
		t.Fatalf("unpriced selection harus tetap muncul, got %d lines", len(lines))
	}
	li := lines[0]
	if !li.Unpriced || li.Net != 0 || li.PerNight != 0 {
		t.Fatalf("unpriced line salah: %+v", li)
	}
}

func TestHotelSelectionWithoutHotelExcluded(t *testing.T) {
	sels := []HotelSelection{{HotelID: 0, CheckIn: "2025-01-10", Nights: 3}}
	if lines := HotelLines(sels, seasonRates(), TravelerCounts{Adults: 1}); len(lines) != 0 {
		t.Fatalf("selection tanpa hotel harus absen, got %d lines", len(lines))
	}
}

func TestServiceLinesSelfArrangedExcluded(t *testing.T) {
	tc := TravelerCounts{Adults: 2}
	rates := []ServiceRate{{ItemID: 7, Label: "Fullboard", Prices: TierPrices{Adult: 20}}}
	sels := []ServiceSelection{
		{ItemID: 7, SelfArranged: true},
		{ItemID: 0},
	}
	if lines := ServiceLines(CategoryFood, sels, rates, tc); len(lines) != 0 {
		t.Fatalf("self-arranged/kosong harus dikecualikan, got %d lines", len(lines))
	}
}

func TestServiceLineMissingRateIsUnpriced(t *testing.T) {
	sels := []ServiceSelection{{ItemID: 99, Label: "Catering"}}
	lines := ServiceLines(CategoryFood, sels, nil, TravelerCounts{Adults: 2})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].Unpriced || lines[0].Net != 0 {
		t.Fatalf("missing rate line salah: %+v", lines[0])
	}
}

func TestVisaAggregateLine(t *testing.T) {
	tc := TravelerCounts{Adults: 2, Children: 1, Infants: 1}
	fee := &TierPrices{Adult: 300, Child: 150, Infant: 0}

	li, ok := VisaLine(ServiceSelection{ItemID: 1, Label: "Visa Umrah"}, fee, tc)
	if !ok {
		t.Fatalf("visa line should be included")
	}
	if li.Net != 750 {
		t.Fatalf("visa net = %v, want 750", li.Net)
	}

	if _, ok := VisaLine(ServiceSelection{ItemID: 1, SelfArranged: true}, fee, tc); ok {
		t.Fatalf("self-arranged visa tidak boleh masuk tagihan")
	}
}

func TestFlightFieldFallback(t *testing.T) {
	tc := TravelerCounts{Children: 1}
	price := 500.0

	withPrice := &FlightFare{ID: 1, ChildPrice: &price}
	withFare := &FlightFare{ID: 1, ChildFare: &price}

	a, ok := FlightLine(ServiceSelection{ItemID: 1}, withPrice, tc)
	if !ok {
		t.Fatalf("flight line should be included")
	}
	b, _ := FlightLine(ServiceSelection{ItemID: 1}, withFare, tc)
	if a.Net != b.Net {
		t.Fatalf("child_fare fallback harus sama dengan child_price: %v vs %v", a.Net, b.Net)
	}
	if a.Net != 500 {
		t.Fatalf("flight net = %v, want 500", a.Net)
	}
}

func TestFlightPricePreferredOverFare(t *testing.T) {
	price, legacy := 450.0, 999.0
	fare := FlightFare{AdultPrice: &price, AdultFare: &legacy}
	if got := fare.Tier().Adult; got != 450 {
		t.Fatalf("adult_price harus menang atas adult_fare, got %v", got)
	}
}
