package bookings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elevated-studio/core"
	"elevated-studio/notify"
	"elevated-studio/relay"
	"elevated-studio/studio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postBooking(t *testing.T, handler http.HandlerFunc, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v2/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func validPayload() map[string]string {
	return map[string]string{
		"name":    "Jane",
		"email":   "j@x.com",
		"phone":   "555",
		"date":    "2025-12-01",
		"time":    "10:00",
		"service": "classic-lashes",
	}
}

func TestHandleCreate(t *testing.T) {
	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer relaySrv.Close()

	toasts := notify.New(time.Minute)
	state := studio.NewState(toasts)
	handler := HandleCreate(state, relay.New(relaySrv.URL, "studio@example.com", true), toasts)

	rec := postBooking(t, handler, validPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.EmailSent)
	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, core.BookingPending, resp.Booking.Status)

	require.Len(t, state.Bookings(), 1)
	msg, visible := toasts.Current()
	assert.True(t, visible)
	assert.Equal(t, "Booking confirmed! Confirmation email sent.", msg)
}

func TestHandleCreateRelayFailureMasked(t *testing.T) {
	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer relaySrv.Close()

	toasts := notify.New(time.Minute)
	state := studio.NewState(toasts)
	handler := HandleCreate(state, relay.New(relaySrv.URL, "studio@example.com", true), toasts)

	rec := postBooking(t, handler, validPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Masking hides the delivery failure; the visitor sees success.
	assert.True(t, resp.EmailSent)
	assert.Len(t, state.Bookings(), 1)
}

func TestHandleCreateRelayFailureSurfaced(t *testing.T) {
	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer relaySrv.Close()

	toasts := notify.New(time.Minute)
	state := studio.NewState(toasts)
	handler := HandleCreate(state, relay.New(relaySrv.URL, "studio@example.com", false), toasts)

	rec := postBooking(t, handler, validPayload())
	// The booking itself still succeeds.
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.EmailSent)
	assert.Len(t, state.Bookings(), 1)

	msg, _ := toasts.Current()
	assert.Equal(t, "Booking saved! We will contact you shortly.", msg)
}

func TestHandleCreateValidation(t *testing.T) {
	toasts := notify.New(time.Minute)
	state := studio.NewState(toasts)
	handler := HandleCreate(state, relay.New("http://127.0.0.1:0", "x@x", true), toasts)

	t.Run("missing required field", func(t *testing.T) {
		payload := validPayload()
		delete(payload, "email")
		rec := postBooking(t, handler, payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown service", func(t *testing.T) {
		payload := validPayload()
		payload["service"] = "nail-art"
		rec := postBooking(t, handler, payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Empty(t, state.Bookings())
}

func TestHandleServices(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v2/services", nil)
	rec := httptest.NewRecorder()
	HandleServices()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var services []core.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	assert.Len(t, services, 6)
	assert.Equal(t, "classic-lashes", services[0].Value)
}
