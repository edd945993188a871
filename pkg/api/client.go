/*
api implements a client for the OpenAI REST API, authenticated with a
project or user API key.
https://platform.openai.com/docs/api-reference
*/
package api

import (
	"os"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	modelcache "github.com/mutablelogic/go-openai/pkg/modelcache"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*httpclient.Client
	cache *modelcache.ModelCache
}

var _ openai.Client = (*Client)(nil)
var _ openai.Generator = (*Client)(nil)
var _ openai.Embedder = (*Client)(nil)
var _ openai.Speaker = (*Client)(nil)
var _ openai.Transcriber = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EnvAPIKey    = "OPENAI_API_KEY"
	EnvBaseURL   = "OPENAI_BASE_URL"
	EnvOrgID     = "OPENAI_ORG_ID"
	EnvProjectID = "OPENAI_PROJECT_ID"
)

const (
	headerOrganization = "OpenAI-Organization"
	headerProject      = "OpenAI-Project"
	modelCacheTTL      = time.Hour
	modelCacheCap      = 100
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given API key. The endpoint defaults to
// https://api.openai.com/v1 and can be changed with client.OptEndpoint.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, openai.ErrBadParameter.With("api key is required")
	}
	c, err := httpclient.New(httpclient.Endpoint, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{c, modelcache.NewModelCache(modelCacheTTL, modelCacheCap)}, nil
}

// NewFromEnv creates a new client from the OPENAI_API_KEY environment
// variable. OPENAI_BASE_URL, OPENAI_ORG_ID and OPENAI_PROJECT_ID are used
// when set. Options are applied after those from the environment.
func NewFromEnv(opts ...client.ClientOpt) (*Client, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, openai.ErrBadParameter.Withf("%s is not set", EnvAPIKey)
	}
	var env []client.ClientOpt
	if url := os.Getenv(EnvBaseURL); url != "" {
		env = append(env, client.OptEndpoint(url))
	}
	if org := os.Getenv(EnvOrgID); org != "" {
		env = append(env, WithOrganization(org))
	}
	if project := os.Getenv(EnvProjectID); project != "" {
		env = append(env, WithProject(project))
	}
	return New(apiKey, append(env, opts...)...)
}

///////////////////////////////////////////////////////////////////////////////
// CLIENT OPTIONS

// WithOrganization sets the organization used for requests
func WithOrganization(id string) client.ClientOpt {
	return client.OptHeader(headerOrganization, id)
}

// WithProject sets the project used for requests
func WithProject(id string) client.ClientOpt {
	return client.OptHeader(headerProject, id)
}
