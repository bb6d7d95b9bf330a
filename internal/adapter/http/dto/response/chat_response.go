package response

import "poolworks/internal/usecase"

type ChatResponse struct {
	Response            string `json:"response"`
	CanGenerateEstimate bool   `json:"can_generate_estimate"`
}

func FromChatTurn(t usecase.ChatTurn) ChatResponse {
	return ChatResponse{
		Response:            t.Response,
		CanGenerateEstimate: t.CanGenerateEstimate,
	}
}
