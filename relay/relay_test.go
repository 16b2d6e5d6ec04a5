package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"elevated-studio/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() core.Booking {
	return core.Booking{
		ID:      "01HZX0000000000000000000AA",
		Name:    "Jane",
		Email:   "j@x.com",
		Phone:   "555",
		Date:    "2025-12-01",
		Time:    "10:00",
		Service: "classic-lashes",
		Notes:   "first visit",
		Status:  core.BookingPending,
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "studio@example.com", true)
	err := c.SendBookingConfirmation(context.Background(), sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, "Jane", got["name"])
	assert.Equal(t, "Classic Lash Extensions - From $80", got["service"])
	assert.Equal(t, "New Booking - Jane - Classic Lash Extensions - From $80", got["_subject"])
	assert.Equal(t, "table", got["_template"])
}

func TestSendBookingConfirmationServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "studio@example.com", true)
	err := c.SendBookingConfirmation(context.Background(), sampleBooking())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSendBookingConfirmationNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, "studio@example.com", true)
	err := c.SendBookingConfirmation(context.Background(), sampleBooking())
	require.Error(t, err)
}

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("RELAY_ENDPOINT", "")
	t.Setenv("RELAY_OPERATOR_EMAIL", "")
	t.Setenv("RELAY_MASK_FAILURES", "")

	c := NewFromEnv()
	assert.Equal(t, defaultOperatorEmail, c.OperatorEmail)
	assert.Equal(t, "https://formsubmit.co/ajax/"+defaultOperatorEmail, c.Endpoint)
	assert.True(t, c.MaskFailures)

	t.Setenv("RELAY_MASK_FAILURES", "false")
	assert.False(t, NewFromEnv().MaskFailures)
}
