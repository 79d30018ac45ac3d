package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ChatRequest is the incoming chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the dispatcher's reply.
type ChatResponse struct {
	ReplyText string `json:"reply_text"`
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.dispatcher.Handle(r.Context(), message)
	respondJSON(w, http.StatusOK, ChatResponse{ReplyText: reply})
}
