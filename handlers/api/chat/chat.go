package chat

import (
	"net/http"

	"elevated-studio/chat"

	"github.com/go-chi/render"
)

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Intent chat.Intent  `json:"intent"`
	User   chat.Message `json:"user"`
	Bot    chat.Message `json:"bot"`
}

// HandleMessage is the HTTP fallback for the chat widget: one visitor
// message in, the canned reply out. The socket.io transport adds the typing
// delay; here the reply is immediate.
func HandleMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messageRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Invalid request body"})
			return
		}
		if req.Message == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": "Message is required"})
			return
		}

		reply := chat.Respond(req.Message)
		render.JSON(w, r, messageResponse{
			Intent: reply.Intent,
			User:   chat.NewMessage(req.Message, "user"),
			Bot:    chat.NewMessage(reply.Text, "bot"),
		})
	}
}

// HandleQuickReplies returns the widget's suggestion chips.
func HandleQuickReplies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, chat.QuickReplies)
	}
}
