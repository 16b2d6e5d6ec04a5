// Package relay sends booking notifications to a third-party form-relay
// endpoint, which forwards them as email to the studio operator.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
)

const defaultOperatorEmail = "bookings@elevatedlashbrow.com"

// Client posts booking details to the relay endpoint.
//
// MaskFailures is the delivery policy: when true (the default), a failed
// relay call is logged and hidden from the visitor, who sees the booking
// confirmed anyway. The booking itself is stored either way; the worst case
// is an email that never arrives.
type Client struct {
	Endpoint      string
	OperatorEmail string
	MaskFailures  bool

	httpClient *http.Client
}

// New returns a Client for the given endpoint and delivery policy.
func New(endpoint, operatorEmail string, maskFailures bool) *Client {
	return &Client{
		Endpoint:      endpoint,
		OperatorEmail: operatorEmail,
		MaskFailures:  maskFailures,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewFromEnv builds a Client from RELAY_ENDPOINT, RELAY_OPERATOR_EMAIL, and
// RELAY_MASK_FAILURES (set to "false" to surface delivery failures).
func NewFromEnv() *Client {
	operatorEmail := os.Getenv("RELAY_OPERATOR_EMAIL")
	if operatorEmail == "" {
		operatorEmail = defaultOperatorEmail
	}
	endpoint := os.Getenv("RELAY_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://formsubmit.co/ajax/" + operatorEmail
	}
	mask := os.Getenv("RELAY_MASK_FAILURES") != "false"

	logrus.WithFields(logrus.Fields{
		"endpoint":      endpoint,
		"maskFailures":  mask,
		"operatorEmail": operatorEmail,
	}).Info("Booking relay configured")
	return New(endpoint, operatorEmail, mask)
}

// relayPayload is the JSON body the form relay expects. The underscored
// fields are routing hints for the relay service itself.
type relayPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes"`
	Subject  string `json:"_subject"`
	Template string `json:"_template"`
}

// SendBookingConfirmation posts the booking to the relay. A non-2xx status
// is an error; the caller decides (via MaskFailures) whether the visitor
// ever hears about it.
func (c *Client) SendBookingConfirmation(ctx context.Context, b core.Booking) error {
	payload := relayPayload{
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		Service:  core.ServiceLabel(b.Service),
		Date:     b.Date,
		Time:     b.Time,
		Notes:    b.Notes,
		Subject:  fmt.Sprintf("New Booking - %s - %s", b.Name, core.ServiceLabel(b.Service)),
		Template: "table",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"service":    b.Service,
	}).Info("Booking notification relayed")
	return nil
}
