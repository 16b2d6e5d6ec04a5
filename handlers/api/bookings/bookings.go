package bookings

import (
	"net/http"

	"elevated-studio/core"
	"elevated-studio/notify"
	"elevated-studio/relay"
	"elevated-studio/studio"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type createRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

type createResponse struct {
	Booking   core.Booking `json:"booking"`
	EmailSent bool         `json:"emailSent"`
}

// HandleCreate stores a booking and relays it to the operator's inbox. The
// booking always succeeds locally; whether a failed relay call is visible
// in the response depends on the relay's masking policy.
func HandleCreate(state *studio.State, relayClient *relay.Client, toasts *notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid request body"})
			return
		}

		if req.Name == "" || req.Email == "" || req.Phone == "" || req.Date == "" || req.Time == "" || req.Service == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "All fields except notes are required"})
			return
		}
		if !core.KnownService(req.Service) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Unknown service"})
			return
		}

		booking := state.AddBooking(core.Booking{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Date:    req.Date,
			Time:    req.Time,
			Service: req.Service,
			Notes:   req.Notes,
		})

		emailSent := true
		if err := relayClient.SendBookingConfirmation(r.Context(), booking); err != nil {
			logrus.WithError(err).WithField("booking_id", booking.ID).Error("Booking relay failed")
			if !relayClient.MaskFailures {
				emailSent = false
			}
		}

		if emailSent {
			toasts.Show("Booking confirmed! Confirmation email sent.")
		} else {
			toasts.Show("Booking saved! We will contact you shortly.")
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, createResponse{Booking: booking, EmailSent: emailSent})
	}
}

// HandleList returns all bookings in arrival order (operator only).
func HandleList(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings := state.Bookings()
		if bookings == nil {
			bookings = []core.Booking{}
		}
		render.JSON(w, r, bookings)
	}
}

// HandleServices returns the bookable service catalog.
func HandleServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, core.Services())
	}
}

// HandleTimeSlots returns the bookable appointment times.
func HandleTimeSlots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, core.TimeSlots)
	}
}
