package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Advisor is one chat session with the model, optionally armed with a
// function library it can call into.
type Advisor struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	Library   Library
	chat      *genai.Chat
}

// Start creates the underlying chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends parts to the chat and resolves function calls until the
// model produces a text answer.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from %s", a.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if a.Library == nil {
			return nil, fmt.Errorf("%s doesn't know how to make function calls", a.Name)
		}

		// Make the callback. Errors travel inside the response so the
		// model can recover from them.
		fresp := a.Library(ctx, part0.FunctionCall)

		// Ask again with the response it asked for, until we have a
		// real answer.
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}
