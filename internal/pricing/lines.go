package pricing

import (
	"math"
	"strings"
)

// Kategori biaya pada rincian invoice.
const (
	CategoryHotel     = "hotel"
	CategoryTransport = "transport"
	CategoryFood      = "food"
	CategoryZiarat    = "ziarat"
	CategoryVisa      = "visa"
	CategoryFlight    = "flight"
)

// LineItem is one row of the invoice cost breakdown.
// Unpriced marks a selection whose catalog price could not be resolved; the
// row still renders at zero so the gap is visible on the document.
type LineItem struct {
	Category string         `json:"category"`
	Label    string         `json:"label"`
	Unit     TierPrices     `json:"unit"`
	Counts   TravelerCounts `json:"counts"`
	Nights   int            `json:"nights,omitempty"`
	PerNight float64        `json:"perNight,omitempty"`
	Net      float64        `json:"net"`
	Unpriced bool           `json:"unpriced,omitempty"`
}

// HotelSelection is one hotel stay entered on the booking form.
// A selection without HotelID is treated as absent, not as zero-cost.
type HotelSelection struct {
	HotelID   int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	RoomType  string `json:"room_type"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Nights    int    `json:"nights"`
}

// ServiceSelection is a generic catalog pick (food, ziarat, transport, visa,
// flight). SelfArranged berarti jamaah mengurus sendiri: tidak masuk tagihan.
type ServiceSelection struct {
	ItemID       int64  `json:"item_id"`
	Label        string `json:"label"`
	SelfArranged bool   `json:"self_arranged"`
}

// ServiceRate is a flat (non-seasonal) per-person catalog price row.
type ServiceRate struct {
	ItemID int64      `json:"item_id"`
	Label  string     `json:"label"`
	Prices TierPrices `json:"prices"`
}

// FlightFare carries both historical column namings for tier fares.
// *_price is preferred, *_fare is the legacy fallback; pointers keep
// "absent" distinguishable from an explicit zero.
type FlightFare struct {
	ID      int64  `json:"id"`
	Airline string `json:"airline"`
	Sector  string `json:"sector"`

	AdultPrice  *float64 `json:"adult_price,omitempty"`
	ChildPrice  *float64 `json:"child_price,omitempty"`
	InfantPrice *float64 `json:"infant_price,omitempty"`

	AdultFare  *float64 `json:"adult_fare,omitempty"`
	ChildFare  *float64 `json:"child_fare,omitempty"`
	InfantFare *float64 `json:"infant_fare,omitempty"`
}

// Tier resolves the effective tier prices, per field.
func (f FlightFare) Tier() TierPrices {
	return TierPrices{
		Adult:  pick(f.AdultPrice, f.AdultFare),
		Child:  pick(f.ChildPrice, f.ChildFare),
		Infant: pick(f.InfantPrice, f.InfantFare),
	}
}

func pick(price, fare *float64) float64 {
	if price != nil {
		return *price
	}
	if fare != nil {
		return *fare
	}
	return 0
}

// RoundMinor rounds an amount to the currency minor unit (2 decimals).
func RoundMinor(x float64) float64 {
	return math.Round(x*100) / 100
}

func weighted(u TierPrices, tc TravelerCounts) float64 {
	return u.Adult*float64(tc.Adults) + u.Child*float64(tc.Children) + u.Infant*float64(tc.Infants)
}

// HotelLines builds one line per hotel selection. The nightly unit price is
// resolved against the seasonal catalog using check-in as reference date;
// unresolved seasons produce a zero, Unpriced row.
func HotelLines(sels []HotelSelection, rates []HotelRate, tc TravelerCounts) []LineItem {
	out := []LineItem{}
	for _, sel := range sels {
		if sel.HotelID == 0 {
			continue
		}
		nights := sel.Nights
		if nights < 0 {
			nights = 0
		}
		li := LineItem{
			Category: CategoryHotel,
			Label:    hotelLabel(sel),
			Counts:   tc,
			Nights:   nights,
		}
		if rate, ok := ResolveSeason(rates, sel.HotelID, sel.RoomType, sel.CheckIn); ok {
			li.Unit = rate.Prices
			li.PerNight = RoundMinor(weighted(rate.Prices, tc))
			li.Net = RoundMinor(li.PerNight * float64(nights))
		} else {
			li.Unpriced = true
		}
		out = append(out, li)
	}
	return out
}

func hotelLabel(sel HotelSelection) string {
	name := strings.TrimSpace(sel.HotelName)
	if name == "" {
		name = "Hotel"
	}
	room := strings.TrimSpace(sel.RoomType)
	if room == "" {
		return name
	}
	return name + " (" + room + ")"
}

// ServiceLines builds one line per selection against a flat rate catalog.
// Self-arranged and empty selections are excluded entirely.
func ServiceLines(category string, sels []ServiceSelection, rates []ServiceRate, tc TravelerCounts) []LineItem {
	out := []LineItem{}
	for _, sel := range sels {
		if sel.SelfArranged || sel.ItemID == 0 {
			continue
		}
		li := LineItem{
			Category: category,
			Label:    strings.TrimSpace(sel.Label),
			Counts:   tc,
			Unpriced: true,
		}
		for _, r := range rates {
			if r.ItemID != sel.ItemID {
				continue
			}
			if li.Label == "" {
				li.Label = strings.TrimSpace(r.Label)
			}
			li.Unit = r.Prices
			li.Net = RoundMinor(weighted(r.Prices, tc))
			li.Unpriced = false
			break
		}
		out = append(out, li)
	}
	return out
}

// VisaLine builds the single aggregate visa line for the whole booking.
// ok=false means the booking carries no visa charge at all (self-arranged or
// no visa type selected).
func VisaLine(sel ServiceSelection, fee *TierPrices, tc TravelerCounts) (LineItem, bool) {
	if sel.SelfArranged || sel.ItemID == 0 {
		return LineItem{}, false
	}
	li := LineItem{
		Category: CategoryVisa,
		Label:    strings.TrimSpace(sel.Label),
		Counts:   tc,
	}
	if li.Label == "" {
		li.Label = "Visa"
	}
	if fee == nil {
		li.Unpriced = true
		return li, true
	}
	li.Unit = *fee
	li.Net = RoundMinor(weighted(*fee, tc))
	return li, true
}

// FlightLine builds the single aggregate flight line from the selected fare.
func FlightLine(sel ServiceSelection, fare *FlightFare, tc TravelerCounts) (LineItem, bool) {
	if sel.SelfArranged || sel.ItemID == 0 {
		return LineItem{}, false
	}
	li := LineItem{
		Category: CategoryFlight,
		Label:    strings.TrimSpace(sel.Label),
		Counts:   tc,
	}
	if fare == nil {
		if li.Label == "" {
			li.Label = "Tiket Pesawat"
		}
		li.Unpriced = true
		return li, true
	}
	if li.Label == "" {
		li.Label = flightLabel(*fare)
	}
	li.Unit = fare.Tier()
	li.Net = RoundMinor(weighted(li.Unit, tc))
	return li, true
}

func flightLabel(f FlightFare) string {
	airline := strings.TrimSpace(f.Airline)
	sector := strings.TrimSpace(f.Sector)
	switch {
	case airline != "" && sector != "":
		return airline + " " + sector
	case airline != "":
		return airline
	case sector != "":
		return sector
	default:
		return "Tiket Pesawat"
	}
}
