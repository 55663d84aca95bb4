// Package optimize rewrites resume content against a target job description
// through the Claude Messages API and returns the structured resume record.
package optimize

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jonathan/resume-optimizer/internal/resume"
	"github.com/jonathan/resume-optimizer/internal/schemas"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "claude-sonnet-4-20250514"

const maxResponseTokens = 8000

// Client is an abstraction over the optimization provider.
type Client interface {
	// Optimize rewrites resumeText for the given job and returns the
	// structured record.
	Optimize(ctx context.Context, resumeText, jobTitle, jobDescription string) (*resume.Record, error)
}

// ClaudeClient implements Client against the Anthropic Messages API.
type ClaudeClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaudeClient creates a Claude-backed optimization client.
func NewClaudeClient(apiKey, model string) (*ClaudeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	return &ClaudeClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}, nil
}

// Optimize sends the optimization prompt and decodes the strict-JSON reply.
// The reply is schema-validated before decoding so a malformed model response
// surfaces as an OptimizationError, never as a rendering fault downstream.
func (c *ClaudeClient) Optimize(ctx context.Context, resumeText, jobTitle, jobDescription string) (*resume.Record, error) {
	prompt := BuildPrompt(resumeText, jobTitle, jobDescription)

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxResponseTokens,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, &OptimizationError{Message: "failed to call optimization API", Cause: err}
	}

	text, err := extractResponseText(response)
	if err != nil {
		return nil, err
	}

	payload := []byte(CleanJSONBlock(text))

	if err := schemas.ValidateRecord(payload); err != nil {
		return nil, &OptimizationError{Message: "optimization response does not match the resume record schema", Cause: err}
	}

	rec, err := resume.Decode(payload)
	if err != nil {
		return nil, &OptimizationError{Message: "failed to decode optimization response", Cause: err}
	}
	return rec, nil
}

// extractResponseText concatenates the text blocks of a Messages reply.
func extractResponseText(response *anthropic.Message) (string, error) {
	if response == nil || len(response.Content) == 0 {
		return "", &OptimizationError{Message: "empty response from optimization API"}
	}

	var text string
	for _, content := range response.Content {
		text += content.AsText().Text
	}
	if text == "" {
		return "", &OptimizationError{Message: "no text content in optimization response"}
	}
	return text, nil
}
