package api

import "context"

// AIChatAPI is the in-wizard help assistant. The current backend step goes
// along with every message so answers stay scoped to the screen the user is
// filling in. All model calls run server-side.
type AIChatAPI struct {
	client *Client
}

func NewAIChatAPI(client *Client) *AIChatAPI {
	return &AIChatAPI{client: client}
}

type chatRequest struct {
	Message     string `json:"message"`
	CurrentStep int    `json:"currentStep"`
}

// ChatReply is the assistant's answer to one message.
type ChatReply struct {
	Reply string `json:"reply"`
}

// Chat sends one user message tagged with the backend step it was asked
// from.
func (a *AIChatAPI) Chat(ctx context.Context, message string, currentStep int) (*ChatReply, error) {
	var reply ChatReply
	body := chatRequest{Message: message, CurrentStep: currentStep}
	if err := a.client.postJSON(ctx, "/ai/chat", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
