package interfaces

import (
	"context"
	"poolworks/internal/domain/entities"
)

// IAssistant abstracts the conversational AI used for estimator chat.
//
// Reply produces the next assistant turn for the running conversation.
// ExtractProject distills the conversation into a structured project
// description. Both may fail (provider down, malformed model output); the
// use cases degrade to scripted replies and keyword extraction in that case.
type IAssistant interface {
	Reply(ctx context.Context, messages []entities.Message) (string, error)
	ExtractProject(ctx context.Context, messages []entities.Message) (entities.ProjectDescription, error)
}
