package usecase

import (
	"context"
	"errors"
	"testing"

	"poolworks/internal/domain/entities"
	mock_interfaces "poolworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_HandleMessage(t *testing.T) {
	t.Run("invalid session id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil)
		_, err := uc.HandleMessage(context.Background(), "   ", "hi")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("invalid message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil)
		_, err := uc.HandleMessage(context.Background(), "sess-1", "  ")
		if !errors.Is(err, ErrInvalidMessage) {
			t.Fatalf("expected ErrInvalidMessage, got %v", err)
		}
	})

	t.Run("store get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewChatUseCase(sessions, nil, nil)

		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Conversation{}, errors.New("redis down"))

		_, err := uc.HandleMessage(context.Background(), "sess-1", "hi")
		if err == nil || err.Error() != "redis down" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})

	t.Run("scripted intro on first message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewChatUseCase(sessions, nil, nil)

		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Conversation{}, nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Conversation{})).DoAndReturn(
			func(_ context.Context, conv entities.Conversation) error {
				if conv.SessionID != "sess-1" || len(conv.Messages) != 2 {
					t.Fatalf("unexpected conversation: %+v", conv)
				}
				if conv.Messages[0].Role != entities.RoleUser || conv.Messages[1].Role != entities.RoleAssistant {
					t.Fatalf("unexpected roles: %+v", conv.Messages)
				}
				return nil
			},
		)

		turn, err := uc.HandleMessage(context.Background(), "sess-1", "I want a pool estimate")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.Response != demoIntroReply {
			t.Fatalf("expected intro reply, got %q", turn.Response)
		}
		if turn.CanGenerateEstimate {
			t.Fatalf("first exchange should not allow estimate generation")
		}
	})

	t.Run("scripted ready reply on second exchange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewChatUseCase(sessions, nil, nil)

		existing := entities.Conversation{SessionID: "sess-1", Messages: []entities.Message{
			{Role: entities.RoleUser, Content: "hi"},
			{Role: entities.RoleAssistant, Content: demoIntroReply},
		}}
		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(existing, nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		turn, err := uc.HandleMessage(context.Background(), "sess-1", "600 sqft concrete in Dallas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.Response != demoReadyReply {
			t.Fatalf("expected ready reply, got %q", turn.Response)
		}
	})

	t.Run("estimate unlocked after five messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewChatUseCase(sessions, nil, nil)

		existing := entities.Conversation{SessionID: "sess-1", Messages: []entities.Message{
			{Role: entities.RoleUser}, {Role: entities.RoleAssistant},
			{Role: entities.RoleUser}, {Role: entities.RoleAssistant},
		}}
		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(existing, nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		turn, err := uc.HandleMessage(context.Background(), "sess-1", "anything else?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.Response != demoAckReply {
			t.Fatalf("expected ack reply, got %q", turn.Response)
		}
		if !turn.CanGenerateEstimate {
			t.Fatalf("expected estimate generation to be unlocked")
		}
	})

	t.Run("assistant reply preferred", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewChatUseCase(sessions, assistant, nil)

		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Conversation{}, nil)
		assistant.EXPECT().Reply(gomock.Any(), gomock.Any()).Return("What size pool do you have in mind?", nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		turn, err := uc.HandleMessage(context.Background(), "sess-1", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.Response != "What size pool do you have in mind?" {
			t.Fatalf("unexpected reply: %q", turn.Response)
		}
	})

	t.Run("assistant failure falls back to script", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewChatUseCase(sessions, assistant, nil)

		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Conversation{}, nil)
		assistant.EXPECT().Reply(gomock.Any(), gomock.Any()).Return("", errors.New("provider unavailable"))
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		turn, err := uc.HandleMessage(context.Background(), "sess-1", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if turn.Response != demoIntroReply {
			t.Fatalf("expected scripted fallback, got %q", turn.Response)
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewChatUseCase(sessions, nil, nil)

		sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Conversation{}, nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		_, err := uc.HandleMessage(context.Background(), "sess-1", "hi")
		if err == nil || err.Error() != "write failed" {
			t.Fatalf("expected save error, got %v", err)
		}
	})
}
