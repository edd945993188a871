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
// OPTIONS

// WithDimensions sets the number of dimensions of the output embeddings.
// Only supported by text-embedding-3 and later models.
func WithDimensions(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(openai.ErrBadParameter.With("dimensions must be at least 1"))
	}
	return opt.SetUint(dimensionsKey, value)
}

// WithEncodingFormat sets the format of returned embeddings. Only float is
// supported, as base64 output cannot be decoded into vectors.
func WithEncodingFormat(value string) opt.Opt {
	if value != "float" {
		return opt.Error(openai.ErrBadParameter.Withf("unsupported encoding format: %q", value))
	}
	return opt.SetString(encodingFormatKey, value)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateEmbeddings returns an embedding vector for each input
func (c *Client) CreateEmbeddings(ctx context.Context, model string, input []string, opts ...opt.Opt) (*schema.EmbeddingResponse, error) {
	request, err := EmbeddingRequest(model, input, opts...)
	if err != nil {
		return nil, err
	}
	var response schema.EmbeddingResponse
	if err := c.Post(ctx, request, &response, client.OptPath("embeddings")); err != nil {
		return nil, err
	}
	return &response, nil
}

// EmbeddingRequest returns the request body for embeddings
func EmbeddingRequest(model string, input []string, opts ...opt.Opt) (*schema.EmbeddingRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return embeddingRequestFromOpts(model, input, o)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func embeddingRequestFromOpts(model string, input []string, o *opt.Options) (*schema.EmbeddingRequest, error) {
	if model == "" {
		return nil, openai.ErrBadParameter.With("model is required")
	}
	if len(input) == 0 {
		return nil, openai.ErrBadParameter.With("at least one input is required")
	}
	for i, text := range input {
		if text == "" {
			return nil, openai.ErrBadParameter.Withf("input %d is empty", i)
		}
	}
	return &schema.EmbeddingRequest{
		Model:          model,
		Input:          input,
		Dimensions:     uintPtr(o, dimensionsKey),
		EncodingFormat: o.GetString(encodingFormatKey),
		User:           o.GetString(opt.UserKey),
	}, nil
}
