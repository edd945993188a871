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
// PUBLIC METHODS

// CreateBatch creates a batch from an uploaded file of requests. Use
// WithMetadata to attach metadata.
func (c *Client) CreateBatch(ctx context.Context, inputFileID string, endpoint schema.BatchEndpoint, opts ...opt.Opt) (*schema.Batch, error) {
	request, err := BatchRequest(inputFileID, endpoint, opts...)
	if err != nil {
		return nil, err
	}
	var response schema.Batch
	if err := c.Post(ctx, request, &response, client.OptPath("batches")); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetBatch returns a batch
func (c *Client) GetBatch(ctx context.Context, id string) (*schema.Batch, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("batch id is required")
	}
	var response schema.Batch
	if err := c.Get(ctx, &response, client.OptPath("batches", id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// CancelBatch cancels an in-progress batch
func (c *Client) CancelBatch(ctx context.Context, id string) (*schema.Batch, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("batch id is required")
	}
	var response schema.Batch
	if err := c.PostEmpty(ctx, &response, client.OptPath("batches", id, "cancel")); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListBatches returns a page of batches. Use WithLimit and WithAfter to
// paginate.
func (c *Client) ListBatches(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.Batch], error) {
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, "batches")
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.Batch]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// BatchRequest returns the request body to create a batch
func BatchRequest(inputFileID string, endpoint schema.BatchEndpoint, opts ...opt.Opt) (*schema.BatchRequest, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if inputFileID == "" {
		return nil, openai.ErrBadParameter.With("input file id is required")
	}
	if !endpoint.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid endpoint: %q", endpoint)
	}
	return &schema.BatchRequest{
		InputFileID:      inputFileID,
		Endpoint:         endpoint,
		CompletionWindow: schema.BatchCompletionWindow,
		Metadata:         metadata(o),
	}, nil
}
