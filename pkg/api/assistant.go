package api

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	headerBeta    = "OpenAI-Beta"
	assistantsV2  = "assistants=v2"
	maxAssistTool = 128
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithAssistantTools adds built-in tools, such as code_interpreter and
// file_search, to an assistant
func WithAssistantTools(tools ...schema.AssistantTool) opt.Opt {
	return func(o *opt.Options) error {
		for _, tool := range tools {
			if tool.Type == "" {
				return openai.ErrBadParameter.With("tool type is required")
			}
		}
		existing, _ := o.Get(assistantToolsKey).([]schema.AssistantTool)
		o.Set(assistantToolsKey, append(existing, tools...))
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateAssistant creates an assistant for the model. Use WithName,
// WithDescription, WithInstructions, WithTools, WithAssistantTools,
// WithMetadata, WithTemperature and WithTopP to configure it.
func (c *Client) CreateAssistant(ctx context.Context, model string, opts ...opt.Opt) (*schema.Assistant, error) {
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	request, err := AssistantRequest(append([]opt.Opt{WithModel(model)}, opts...)...)
	if err != nil {
		return nil, err
	}
	var response schema.Assistant
	if err := c.Post(ctx, request, &response, client.OptPath("assistants"), beta()); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAssistant returns an assistant
func (c *Client) GetAssistant(ctx context.Context, id string) (*schema.Assistant, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("assistant id is required")
	}
	var response schema.Assistant
	if err := c.Get(ctx, &response, client.OptPath("assistants", id), beta()); err != nil {
		return nil, err
	}
	return &response, nil
}

// ModifyAssistant changes the fields of an assistant which are set by the
// options. Use WithModel to change the model.
func (c *Client) ModifyAssistant(ctx context.Context, id string, opts ...opt.Opt) (*schema.Assistant, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("assistant id is required")
	}
	request, err := AssistantRequest(opts...)
	if err != nil {
		return nil, err
	}
	var response schema.Assistant
	if err := c.Post(ctx, request, &response, client.OptPath("assistants", id), beta()); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteAssistant deletes an assistant
func (c *Client) DeleteAssistant(ctx context.Context, id string) (*schema.DeletedObject, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("assistant id is required")
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath("assistants", id), beta()); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListAssistants returns a page of assistants. Use WithLimit, WithAfter,
// WithBefore and WithOrder to paginate.
func (c *Client) ListAssistants(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.Assistant], error) {
	reqopts, err := httpclient.Query(opts, httpclient.ListKeys, "assistants")
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.Assistant]
	if err := c.Get(ctx, &response, append(reqopts, beta())...); err != nil {
		return nil, err
	}
	return &response, nil
}

// AssistantRequest returns the request body to create or modify an
// assistant. Function tools set with WithTools are converted to assistant
// tools, after those set with WithAssistantTools.
func AssistantRequest(opts ...opt.Opt) (*schema.AssistantRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	request := &schema.AssistantRequest{
		Model:        o.GetString(opt.ModelKey),
		Name:         stringPtr(o, nameKey),
		Description:  stringPtr(o, descriptionKey),
		Instructions: stringPtr(o, instructionsKey),
		Metadata:     metadata(o),
		Temperature:  float64Ptr(o, opt.TemperatureKey),
		TopP:         float64Ptr(o, opt.TopPKey),
	}
	request.Tools, _ = o.Get(assistantToolsKey).([]schema.AssistantTool)
	for _, tool := range tools(o) {
		request.Tools = append(request.Tools, schema.NewAssistantFunctionTool(tool))
	}
	if len(request.Tools) > maxAssistTool {
		return nil, openai.ErrBadParameter.Withf("at most %d tools are allowed", maxAssistTool)
	}
	return request, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func beta() client.RequestOpt {
	return client.OptReqHeader(headerBeta, assistantsV2)
}
