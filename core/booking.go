package core

import "time"

type (
	// BookingStatus tracks the lifecycle of an appointment request.
	BookingStatus string

	// Booking is an appointment request submitted through the booking form.
	Booking struct {
		ID        string        `json:"id"`
		Name      string        `json:"name"`
		Email     string        `json:"email"`
		Phone     string        `json:"phone"`
		Date      string        `json:"date"`
		Time      string        `json:"time"`
		Service   string        `json:"service"` // service code, see Services
		Notes     string        `json:"notes,omitempty"`
		Status    BookingStatus `json:"status"`
		CreatedAt time.Time     `json:"createdAt"`
	}

	// Service is a bookable treatment offered by the studio.
	Service struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
)

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

var services = []Service{
	{Value: "classic-lashes", Label: "Classic Lash Extensions - From $80"},
	{Value: "volume-lashes", Label: "Volume Lash Extensions - From $120"},
	{Value: "hybrid-lashes", Label: "Hybrid Lash Extensions - From $100"},
	{Value: "lash-fill", Label: "Lash Fills & Touch-ups - From $60"},
	{Value: "eyebrow-threading", Label: "Eyebrow Threading - From $15"},
	{Value: "brow-tinting", Label: "Brow Tinting & Shaping - From $25"},
}

// TimeSlots are the bookable appointment times, on the hour.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// Services returns the bookable service catalog.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// KnownService reports whether value is a declared service code.
func KnownService(value string) bool {
	for _, s := range services {
		if s.Value == value {
			return true
		}
	}
	return false
}

// ServiceLabel resolves a service code to its display label. Unknown codes
// pass through unchanged.
func ServiceLabel(value string) string {
	for _, s := range services {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}
