package memberships

import (
	"net/http"

	"elevated-studio/core"
	"elevated-studio/studio"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// HandlePlans returns the membership plan catalog.
func HandlePlans() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, core.Plans())
	}
}

type signupRequest struct {
	PlanID string `json:"planId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// HandleSignup records a plan signup.
func HandleSignup(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid request body"})
			return
		}

		if _, ok := core.PlanByID(req.PlanID); !ok {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Unknown membership plan"})
			return
		}
		if req.Name == "" || req.Email == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Name and email are required"})
			return
		}

		membership := state.AddMembership(core.Membership{
			PlanID: req.PlanID,
			Name:   req.Name,
			Email:  req.Email,
		})

		logrus.WithFields(logrus.Fields{
			"membership_id": membership.ID,
			"plan":          membership.PlanID,
		}).Info("Membership signup accepted")
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, membership)
	}
}
