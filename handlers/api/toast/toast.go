package toast

import (
	"net/http"

	"elevated-studio/notify"

	"github.com/go-chi/render"
)

type toastResponse struct {
	Message string `json:"message"`
	Show    bool   `json:"show"`
}

// HandleCurrent exposes the toast slot for the polling UI. A hidden slot is
// an empty message, not an error.
func HandleCurrent(n *notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message, visible := n.Current()
		render.JSON(w, r, toastResponse{Message: message, Show: visible})
	}
}
