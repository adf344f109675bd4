package pricing

// BookingInput bundles the form selections and catalog snapshots a cost
// computation needs. Everything is read-only input; the aggregator keeps no
// state between calls.
type BookingInput struct {
	Counts TravelerCounts

	Hotels     []HotelSelection
	HotelRates []HotelRate

	Transport      []ServiceSelection
	TransportRates []ServiceRate

	Food      []ServiceSelection
	FoodRates []ServiceRate

	Ziarat      []ServiceSelection
	ZiaratRates []ServiceRate

	Visa    ServiceSelection
	VisaFee *TierPrices

	Flight     ServiceSelection
	FlightFare *FlightFare
}

// CostSheet is the full per-category breakdown for one booking.
type CostSheet struct {
	Hotel     []LineItem `json:"hotel"`
	Transport []LineItem `json:"transport"`
	Food      []LineItem `json:"food"`
	Ziarat    []LineItem `json:"ziarat"`
	Visa      []LineItem `json:"visa"`
	Flight    []LineItem `json:"flight"`
}

// Subtotal sums line nets within one category.
func Subtotal(lines []LineItem) float64 {
	var sum float64
	for _, li := range lines {
		sum += li.Net
	}
	return RoundMinor(sum)
}

// Subtotals returns the per-category subtotals keyed by category name.
func (s CostSheet) Subtotals() map[string]float64 {
	return map[string]float64{
		CategoryHotel:     Subtotal(s.Hotel),
		CategoryTransport: Subtotal(s.Transport),
		CategoryFood:      Subtotal(s.Food),
		CategoryZiarat:    Subtotal(s.Ziarat),
		CategoryVisa:      Subtotal(s.Visa),
		CategoryFlight:    Subtotal(s.Flight),
	}
}

// GrandTotal is the sum of all six category subtotals. Every consumer (quote,
// invoice, ledger balance) must read the total from here so the displayed
// breakdown and the billed amount can never diverge.
func (s CostSheet) GrandTotal() float64 {
	sum := Subtotal(s.Hotel) +
		Subtotal(s.Transport) +
		Subtotal(s.Food) +
		Subtotal(s.Ziarat) +
		Subtotal(s.Visa) +
		Subtotal(s.Flight)
	return RoundMinor(sum)
}

// Lines flattens the sheet in display order.
func (s CostSheet) Lines() []LineItem {
	out := make([]LineItem, 0,
		len(s.Hotel)+len(s.Transport)+len(s.Food)+len(s.Ziarat)+len(s.Visa)+len(s.Flight))
	out = append(out, s.Hotel...)
	out = append(out, s.Transport...)
	out = append(out, s.Food...)
	out = append(out, s.Ziarat...)
	out = append(out, s.Visa...)
	out = append(out, s.Flight...)
	return out
}

// Compute runs the whole aggregation for one booking. Pure and total: any
// combination of empty or partial input yields a sheet, never an error.
func Compute(in BookingInput) CostSheet {
	sheet := CostSheet{
		Hotel:     HotelLines(in.Hotels, in.HotelRates, in.Counts),
		Transport: ServiceLines(CategoryTransport, in.Transport, in.TransportRates, in.Counts),
		Food:      ServiceLines(CategoryFood, in.Food, in.FoodRates, in.Counts),
		Ziarat:    ServiceLines(CategoryZiarat, in.Ziarat, in.ZiaratRates, in.Counts),
		Visa:      []LineItem{},
		Flight:    []LineItem{},
	}
	if li, ok := VisaLine(in.Visa, in.VisaFee, in.Counts); ok {
		sheet.Visa = append(sheet.Visa, li)
	}
	if li, ok := FlightLine(in.Flight, in.FlightFare, in.Counts); ok {
		sheet.Flight = append(sheet.Flight, li)
	}
	return sheet
}
