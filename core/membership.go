package core

import "time"

type (
	// PlanFeature is a single line on a membership plan card.
	PlanFeature struct {
		Text     string `json:"text"`
		Included bool   `json:"included"`
	}

	// Plan is a monthly membership package.
	Plan struct {
		ID       string        `json:"id"`
		Badge    string        `json:"badge"`
		Name     string        `json:"name"`
		Price    string        `json:"price"` // monthly, display string
		Featured bool          `json:"featured,omitempty"`
		Features []PlanFeature `json:"features"`
	}

	// Membership records a plan signup.
	Membership struct {
		ID        string    `json:"id"`
		PlanID    string    `json:"planId"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"createdAt"`
	}
)

var plans = []Plan{
	{
		ID:    "basic",
		Badge: "Basic",
		Name:  "Starter Beauty",
		Price: "$79",
		Features: []PlanFeature{
			{Text: "1 Lash Fill per month", Included: true},
			{Text: "1 Eyebrow Threading", Included: true},
			{Text: "10% off all products", Included: true},
			{Text: "Priority booking", Included: true},
			{Text: "No additional services", Included: false},
		},
	},
	{
		ID:       "popular",
		Badge:    "Popular",
		Name:     "Beauty Enthusiast",
		Price:    "$149",
		Featured: true,
		Features: []PlanFeature{
			{Text: "2 Lash Fills per month", Included: true},
			{Text: "2 Eyebrow Threading", Included: true},
			{Text: "1 Brow Tinting", Included: true},
			{Text: "15% off all services", Included: true},
			{Text: "Free consultation", Included: true},
		},
	},
	{
		ID:    "premium",
		Badge: "Premium",
		Name:  "VIP Glamour",
		Price: "$249",
		Features: []PlanFeature{
			{Text: "Unlimited lash fills", Included: true},
			{Text: "Unlimited threading", Included: true},
			{Text: "2 Full lash sets/year", Included: true},
			{Text: "20% off all services", Included: true},
			{Text: "VIP treatment & gifts", Included: true},
		},
	},
}

// Plans returns the membership plan catalog.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up a plan by its id.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
