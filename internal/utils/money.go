package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupiah renders an amount with thousand separators, dropping the
// decimal part when it is whole (invoice style).
func FormatRupiah(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	frac := math.Round((amount - float64(whole)) * 100)
	if frac >= 100 {
		whole++
		frac = 0
	}
	out := fmt.Sprintf("%sRp %s", sign, formatThousand(whole))
	if frac > 0 {
		out += fmt.Sprintf(",%02d", int64(frac))
	}
	return out
}

// ParseAmount parses "Rp 1.500.000", "1,500,000" or "1500000.50" into a float.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "rp")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	// angka polos (boleh desimal titik)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	replacer := strings.NewReplacer(".", "", ",", "", " ", "")
	clean := replacer.Replace(s)
	if clean == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
