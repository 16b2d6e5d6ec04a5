package gallery

import (
	"net/http"

	"elevated-studio/core"
	"elevated-studio/studio"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// HandleList returns the gallery under the current category filter. A
// `category` query parameter replaces the filter first; unknown values fall
// through to "all".
func HandleList(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if category := r.URL.Query().Get("category"); category != "" {
			state.SetFilter(category)
		}

		items := state.FilteredGallery()
		if items == nil {
			items = []core.GalleryItem{}
		}
		render.JSON(w, r, items)
	}
}

type uploadRequest struct {
	Images   []string      `json:"images"` // already-decoded URLs or data-URIs
	Category core.Category `json:"category"`
}

// HandleUpload appends a batch of images to the gallery. The whole batch is
// added in request order; the client is responsible for having decoded the
// files already.
func HandleUpload(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid request body"})
			return
		}

		if len(req.Images) == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "At least one image is required"})
			return
		}
		if !req.Category.Known() {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Unknown gallery category"})
			return
		}

		added := state.AddGalleryImages(req.Images, req.Category)
		logrus.WithFields(logrus.Fields{
			"count":    len(added),
			"category": req.Category,
		}).Info("Gallery upload accepted")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, added)
	}
}
