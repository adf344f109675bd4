package pricing

import "strings"

// TierPrices holds per-person unit prices by age tier.
type TierPrices struct {
	Adult  float64 `json:"adult"`
	Child  float64 `json:"child"`
	Infant float64 `json:"infant"`
}

// HotelRate is one seasonal nightly price row from the hotel catalog.
// Dates are YYYY-MM-DD strings as stored; containment check is lexical.
type HotelRate struct {
	HotelID   int64      `json:"hotel_id"`
	RoomType  string     `json:"room_type"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Prices    TierPrices `json:"prices"`
}

// ResolveSeason returns the first rate (in list order) for the hotel/room whose
// [start_date, end_date] contains refDate. Catalog seasons are assumed
// non-overlapping; when upstream data overlaps anyway, first match wins so the
// result stays deterministic. ok=false means the selection is unpriced.
func ResolveSeason(rates []HotelRate, hotelID int64, roomType, refDate string) (HotelRate, bool) {
	ref := DateOnly(refDate)
	if ref == "" {
		return HotelRate{}, false
	}
	room := normalizeRoom(roomType)
	for _, r := range rates {
		if r.HotelID != hotelID {
			continue
		}
		if room != "" && normalizeRoom(r.RoomType) != "" && normalizeRoom(r.RoomType) != room {
			continue
		}
		start := DateOnly(r.StartDate)
		end := DateOnly(r.EndDate)
		if start == "" || end == "" {
			continue
		}
		if start <= ref && ref <= end {
			return r, true
		}
	}
	return HotelRate{}, false
}

// DateOnly trims a date or datetime string down to YYYY-MM-DD.
func DateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func normalizeRoom(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
