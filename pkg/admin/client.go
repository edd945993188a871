/*
admin implements a client for the OpenAI administration API, which manages
the projects, users, invites and audit logs of an organization. It requires
an admin API key, which is distinct from a project key.
https://platform.openai.com/docs/api-reference/administration
*/
package admin

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*httpclient.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EnvAdminKey = "OPENAI_ADMIN_KEY"
	EnvBaseURL  = "OPENAI_BASE_URL"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new administration client with the given admin key
func New(adminKey string, opts ...client.ClientOpt) (*Client, error) {
	if adminKey == "" {
		return nil, openai.ErrBadParameter.With("admin key is required")
	}
	c, err := httpclient.New(httpclient.Endpoint, adminKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{c}, nil
}

// NewFromEnv creates a new administration client from the OPENAI_ADMIN_KEY
// environment variable, with the endpoint from OPENAI_BASE_URL when set
func NewFromEnv(opts ...client.ClientOpt) (*Client, error) {
	adminKey := os.Getenv(EnvAdminKey)
	if adminKey == "" {
		return nil, openai.ErrBadParameter.Withf("%s is not set", EnvAdminKey)
	}
	var env []client.ClientOpt
	if url := os.Getenv(EnvBaseURL); url != "" {
		env = append(env, client.OptEndpoint(url))
	}
	return New(adminKey, append(env, opts...)...)
}
