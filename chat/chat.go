// Package chat implements the site widget's canned responder: a total
// function from free text to a reply over a closed set of intents. Unmatched
// input always gets the fallback reply, never an error.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent is the recognized topic of a visitor message.
type Intent string

const (
	IntentPricing     Intent = "pricing"
	IntentBooking     Intent = "booking"
	IntentHours       Intent = "hours"
	IntentLocation    Intent = "location"
	IntentServiceInfo Intent = "service-info"
	IntentFallback    Intent = "fallback"
)

// Reply is the responder's answer to one message.
type Reply struct {
	Intent Intent `json:"intent"`
	Text   string `json:"text"`
}

// Message is one entry in a widget conversation transcript.
type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"` // "user" or "bot"
	Time   string `json:"time"`
}

// NewMessage stamps a transcript entry with a fresh id and the current time.
func NewMessage(text, sender string) Message {
	return Message{
		ID:     uuid.NewString(),
		Text:   text,
		Sender: sender,
		Time:   time.Now().Format("15:04"),
	}
}

// QuickReplies are the suggestion chips shown when the widget opens.
var QuickReplies = []string{
	"Book an appointment",
	"View pricing",
	"Lash extensions info",
	"Business hours",
	"Location",
}

// Greeting is the bot's opening message.
func Greeting() string {
	return "Hi! 👋 Welcome to Elevated Lash & Brow! How can I help you today?"
}

// keyword rules, checked in order; first hit wins.
var rules = []struct {
	intent   Intent
	keywords []string
	text     string
}{
	{
		intent:   IntentPricing,
		keywords: []string{"price", "cost", "pricing"},
		text:     "Our pricing ranges from $80 for classic lash extensions to $120 for volume lashes. Threading starts at $15. Would you like to see our full menu?",
	},
	{
		intent:   IntentBooking,
		keywords: []string{"book", "appointment"},
		text:     "Great! I can help you book an appointment. Please click the 'Book Now' button at the top of the page or scroll to our booking section. What service are you interested in?",
	},
	{
		intent:   IntentHours,
		keywords: []string{"hours", "open"},
		text:     "We're open Monday-Friday: 9AM-7PM, Saturday: 10AM-6PM. We're closed on Sundays. Would you like to schedule a visit?",
	},
	{
		intent:   IntentLocation,
		keywords: []string{"location", "where"},
		text:     "We're located at 123 Beauty Street, Seattle, WA 98101. You can find us on the map in our contact section!",
	},
	{
		intent:   IntentServiceInfo,
		keywords: []string{"lash", "extension"},
		text:     "We offer Classic, Volume, and Hybrid lash extensions! Each is customized to your eye shape and desired look. Would you like to know more about a specific type?",
	},
}

const fallbackText = "Thank you for your question! For detailed information, feel free to browse our website or call us at (555) 123-4567. How else can I assist you?"

// Respond maps a visitor message to a reply. It is total: anything that
// matches no rule gets the fallback.
func Respond(message string) Reply {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Reply{Intent: rule.intent, Text: rule.text}
			}
		}
	}
	return Reply{Intent: IntentFallback, Text: fallbackText}
}
