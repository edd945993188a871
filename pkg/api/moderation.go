package api

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateModeration classifies whether inputs are potentially harmful. Use
// WithModel to choose the moderation model.
func (c *Client) CreateModeration(ctx context.Context, input []string, opts ...opt.Opt) (*schema.ModerationResponse, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, openai.ErrBadParameter.With("at least one input is required")
	}
	request := schema.ModerationRequest{
		Model: o.GetString(opt.ModelKey),
		Input: input,
	}
	var response schema.ModerationResponse
	if err := c.Post(ctx, request, &response, client.OptPath("moderations")); err != nil {
		return nil, err
	}
	return &response, nil
}
