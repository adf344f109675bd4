package models

// Hotel is a catalog hotel (Makkah/Madinah inventory).
type Hotel struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Stars     int    `json:"stars"`
	Distance  string `json:"distance"` // jarak ke Haram, teks bebas
	RoomTypes string `json:"room_types"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// VisaFee is the per-visa-type tier price row.
type VisaFee struct {
	ID       int64   `json:"id"`
	VisaType string  `json:"visa_type"`
	Adult    float64 `json:"adult"`
	Child    float64 `json:"child"`
	Infant   float64 `json:"infant"`
}
