package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// TravelerCounts memuat jumlah jamaah per tier usia.
type TravelerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns the number of travelers across all tiers.
func (t TravelerCounts) Total() int {
	return t.Adults + t.Children + t.Infants
}

// ParseCount coerces a raw form value into a non-negative traveler count.
// ok is false only when a value was present but could not be parsed; blank
// input is a legitimate zero. Never panics, never returns negative.
func ParseCount(v any) (int, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case int:
		return clampCount(x), true
	case int64:
		return clampCount(int(x)), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return clampCount(int(x)), true
	case json.Number:
		return parseCountString(x.String())
	case string:
		return parseCountString(x)
	default:
		return 0, false
	}
}

func parseCountString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// form input seperti "2 org" -> ambil angka depan kalau ada
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return clampCount(int(f)), true
		}
		return 0, false
	}
	return clampCount(n), true
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ParseTravelerCounts parses the three count fields at once and reports which
// fields were unparseable so the caller can surface a warning instead of
// silently billing for zero travelers.
func ParseTravelerCounts(adults, children, infants any) (TravelerCounts, []string) {
	var bad []string
	tc := TravelerCounts{}

	var ok bool
	if tc.Adults, ok = ParseCount(adults); !ok {
		bad = append(bad, "adults")
	}
	if tc.Children, ok = ParseCount(children); !ok {
		bad = append(bad, "children")
	}
	if tc.Infants, ok = ParseCount(infants); !ok {
		bad = append(bad, "infants")
	}
	return tc, bad
}
