package usecase

import (
	"context"
	"errors"
	"strings"

	"poolworks/internal/domain/entities"
	"poolworks/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidMessage   = errors.New("invalid message")
)

// Scripted assistant turns used when no AI assistant is configured (or the
// provider call fails). Mirrors the demo conversation of the original tool.
const (
	demoIntroReply = "I'd be happy to help with your estimate! To give you the most accurate quote, I'll need a few details:\n\n" +
		"1. What's the size of your pool? (total square footage)\n" +
		"2. What type of pool are you looking for? (Concrete, fiberglass, or vinyl liner)\n" +
		"3. What's your location?\n" +
		"4. Any special features? (Heating, lighting, spa, waterfalls, etc.)\n\n" +
		"Just share these details and I'll generate a comprehensive estimate for you!"
	demoReadyReply = "Perfect! Based on what you've told me, I have enough information to create a detailed estimate. Click 'Generate Full Estimate' to see:\n\n" +
		"• Complete labor breakdown\n• Materials list with suppliers\n• Equipment rental needs\n• Required permits\n• Project timeline\n• And more!"
	demoAckReply = "Got it! Feel free to share more details or click 'Generate Full Estimate' when you're ready to see the full breakdown."
)

// ChatTurn is the outcome of one chat exchange.
type ChatTurn struct {
	Response            string
	CanGenerateEstimate bool
}

// IChatUseCase drives the estimator conversation: append the user message,
// produce an assistant reply, persist the updated history.
type IChatUseCase interface {
	HandleMessage(ctx context.Context, sessionID, message string) (ChatTurn, error)
}

type ChatUseCase struct {
	sessions  interfaces.ISessionStore
	assistant interfaces.IAssistant
	log       *zap.Logger
}

var _ IChatUseCase = (*ChatUseCase)(nil)

// NewChatUseCase wires the conversation flow. assistant may be nil; the use
// case then answers with the scripted demo replies.
func NewChatUseCase(sessions interfaces.ISessionStore, assistant interfaces.IAssistant, log *zap.Logger) *ChatUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatUseCase{sessions: sessions, assistant: assistant, log: log}
}

func (u *ChatUseCase) HandleMessage(ctx context.Context, sessionID, message string) (ChatTurn, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ChatTurn{}, ErrInvalidSessionID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatTurn{}, ErrInvalidMessage
	}

	conv, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return ChatTurn{}, err
	}
	conv.SessionID = sessionID
	conv.Messages = append(conv.Messages, entities.Message{Role: entities.RoleUser, Content: message})

	reply := u.reply(ctx, conv.Messages)
	conv.Messages = append(conv.Messages, entities.Message{Role: entities.RoleAssistant, Content: reply})

	if err := u.sessions.Save(ctx, conv); err != nil {
		return ChatTurn{}, err
	}

	return ChatTurn{
		Response:            reply,
		CanGenerateEstimate: conv.CanGenerateEstimate(),
	}, nil
}

func (u *ChatUseCase) reply(ctx context.Context, messages []entities.Message) string {
	if u.assistant != nil {
		reply, err := u.assistant.Reply(ctx, messages)
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply
		}
		if err != nil {
			u.log.Warn("assistant reply failed, using scripted response", zap.Error(err))
		}
	}

	switch len(messages) {
	case 1:
		return demoIntroReply
	case 3:
		return demoReadyReply
	default:
		return demoAckReply
	}
}
