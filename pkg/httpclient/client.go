/*
httpclient contains the request dispatch shared by the project and
administration clients. Responses are decoded into typed values, and
failures are mapped onto the error codes of the openai package.
*/
package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	version "github.com/mutablelogic/go-openai/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client wraps the base HTTP client with typed dispatch
type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The default API endpoint
	Endpoint = "https://api.openai.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with the given endpoint and bearer token. Options are
// applied after the defaults, so a caller-supplied endpoint takes precedence.
func New(endpoint, token string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint == "" {
		endpoint = Endpoint
	}
	defaults := []client.ClientOpt{
		client.OptEndpoint(endpoint),
		client.OptUserAgent(version.UserAgent()),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token}),
	}
	c, err := client.New(append(defaults, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Client{c}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do performs a request and decodes the response into out. A stream callback
// which returns io.EOF ends the stream without error.
func (c *Client) Do(ctx context.Context, payload client.Payload, out any, opts ...client.RequestOpt) error {
	if err := c.DoWithContext(ctx, payload, out, opts...); err != nil && !errors.Is(err, io.EOF) {
		return Error(err)
	}
	return nil
}

// Get performs a GET request on the path
func (c *Client) Get(ctx context.Context, out any, opts ...client.RequestOpt) error {
	return c.Do(ctx, client.NewRequest(), out, opts...)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, in, out any, opts ...client.RequestOpt) error {
	payload, err := client.NewJSONRequest(in)
	if err != nil {
		return err
	}
	return c.Do(ctx, payload, out, opts...)
}

// PostEmpty performs a POST request without a body, used for actions such
// as cancel and archive
func (c *Client) PostEmpty(ctx context.Context, out any, opts ...client.RequestOpt) error {
	return c.Do(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), out, opts...)
}

// PostMultipart performs a POST request with a multipart/form-data body
func (c *Client) PostMultipart(ctx context.Context, in, out any, opts ...client.RequestOpt) error {
	payload, err := client.NewStreamingMultipartRequest(in, client.ContentTypeAny)
	if err != nil {
		return err
	}
	return c.Do(ctx, payload, out, opts...)
}

// Delete performs a DELETE request on the path
func (c *Client) Delete(ctx context.Context, out any, opts ...client.RequestOpt) error {
	return c.Do(ctx, client.MethodDelete, out, opts...)
}
