package api

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns the models available, sorted by ID. The list is
// cached for an hour.
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	return c.cache.ListModels(ctx, c.listModels)
}

// GetModel returns a model by ID, from the cache when present
func (c *Client) GetModel(ctx context.Context, id string) (*schema.Model, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("model id is required")
	}
	return c.cache.GetModel(ctx, id, c.getModel)
}

// DeleteModel deletes a fine-tuned model owned by the organization
func (c *Client) DeleteModel(ctx context.Context, id string) (*schema.DeletedObject, error) {
	if id == "" {
		return nil, openai.ErrBadParameter.With("model id is required")
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath("models", id)); err != nil {
		return nil, err
	}
	c.cache.Delete(id)
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) listModels(ctx context.Context) ([]schema.Model, error) {
	var response schema.ListResponse[schema.Model]
	if err := c.Get(ctx, &response, client.OptPath("models")); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *Client) getModel(ctx context.Context, id string) (*schema.Model, error) {
	var response schema.Model
	if err := c.Get(ctx, &response, client.OptPath("models", id)); err != nil {
		return nil, err
	}
	return &response, nil
}
