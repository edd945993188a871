package main

import (
	"encoding/json"
	"io"
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	api "github.com/mutablelogic/go-openai/pkg/api"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	headerRequestID = "X-Client-Request-Id"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an API client configured from the global flags
func (g *Globals) Client() (*api.Client, error) {
	opts := g.clientOpts()
	if g.Org != "" {
		opts = append(opts, api.WithOrganization(g.Org))
	}
	if g.Project != "" {
		opts = append(opts, api.WithProject(g.Project))
	}
	return api.New(g.APIKey, opts...)
}

// Admin returns an administration client configured from the global flags
func (g *Globals) Admin() (*admin.Client, error) {
	return admin.New(g.AdminKey, g.clientOpts()...)
}

// Write encodes v to stdout in the output format
func (g *Globals) Write(v any) error {
	return write(os.Stdout, g.Output, v)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{
		client.OptHeader(headerRequestID, g.requestID),
	}
	if g.BaseURL != "" {
		opts = append(opts, client.OptEndpoint(g.BaseURL))
	}
	if g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, true))
	}
	if g.OtelEndpoint != "" {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return opts
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(toYAML(v))
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// toYAML round-trips v through JSON so the json field names and omitempty
// rules apply to the YAML output
func toYAML(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return v
	}
	return result
}
