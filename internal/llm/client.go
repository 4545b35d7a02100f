package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is the completion-service capability: one prompt exchange in,
// one free-text completion out. Callers that expect structured output
// parse the returned string themselves.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
