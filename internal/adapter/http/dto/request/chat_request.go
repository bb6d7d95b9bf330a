package request

import "strings"

// ChatRequest is one user turn in an estimator conversation.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (r ChatRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func (r ChatRequest) ResolveMessage() string {
	return strings.TrimSpace(r.Message)
}
