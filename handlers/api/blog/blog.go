package blog

import (
	"net/http"

	"elevated-studio/core"
	"elevated-studio/studio"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// HandleList returns all posts, newest first.
func HandleList(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := state.BlogPosts()
		if posts == nil {
			posts = []core.BlogPost{}
		}
		render.JSON(w, r, posts)
	}
}

// HandleGet returns a single post by id.
func HandleGet(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		post, ok := state.BlogPost(id)
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": "Blog post not found"})
			return
		}
		render.JSON(w, r, post)
	}
}

type publishRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Image    string `json:"image"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ReadTime int    `json:"readTime"`
}

// HandlePublish creates a post. Required-field checks live here, at the
// form boundary; the state container itself accepts anything.
func HandlePublish(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req publishRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid request body"})
			return
		}

		if req.Title == "" || req.Author == "" || req.Content == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Title, author, and content are required"})
			return
		}

		post := state.AddBlogPost(core.BlogPost{
			Title:    req.Title,
			Author:   req.Author,
			Image:    req.Image,
			Excerpt:  req.Excerpt,
			Content:  req.Content,
			Category: req.Category,
			ReadTime: req.ReadTime,
		})

		logrus.WithField("post_id", post.ID).Info("Blog post accepted")
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, post)
	}
}

// HandleDelete removes a post. Deleting an unknown id succeeds; the result
// is the same either way.
func HandleDelete(state *studio.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Post id is required"})
			return
		}

		state.DeleteBlogPost(id)
		render.Status(r, http.StatusOK)
		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
