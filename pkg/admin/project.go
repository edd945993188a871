package admin

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
	pathOrganization = "organization"
	pathProjects     = "projects"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListProjects returns a page of projects. Archived projects are only
// included with WithIncludeArchived.
func (c *Client) ListProjects(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.Project], error) {
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey, includeArchivedKey}, pathOrganization, pathProjects)
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.Project]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateProject creates a project with the given name
func (c *Client) CreateProject(ctx context.Context, name string) (*schema.Project, error) {
	if name == "" {
		return nil, openai.ErrBadParameter.With("project name is required")
	}
	var response schema.Project
	if err := c.Post(ctx, schema.ProjectRequest{Name: name}, &response, client.OptPath(pathOrganization, pathProjects)); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProject returns a project
func (c *Client) GetProject(ctx context.Context, id string) (*schema.Project, error) {
	if err := required("project id", id); err != nil {
		return nil, err
	}
	var response schema.Project
	if err := c.Get(ctx, &response, client.OptPath(pathOrganization, pathProjects, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// ModifyProject renames a project
func (c *Client) ModifyProject(ctx context.Context, id, name string) (*schema.Project, error) {
	if err := required("project id", id); err != nil {
		return nil, err
	} else if name == "" {
		return nil, openai.ErrBadParameter.With("project name is required")
	}
	var response schema.Project
	if err := c.Post(ctx, schema.ProjectRequest{Name: name}, &response, client.OptPath(pathOrganization, pathProjects, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// ArchiveProject archives a project. Archived projects cannot be used or
// updated.
func (c *Client) ArchiveProject(ctx context.Context, id string) (*schema.Project, error) {
	if err := required("project id", id); err != nil {
		return nil, err
	}
	var response schema.Project
	if err := c.PostEmpty(ctx, &response, client.OptPath(pathOrganization, pathProjects, id, "archive")); err != nil {
		return nil, err
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// required returns an error naming what is missing when any id is empty
func required(name string, ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return openai.ErrBadParameter.Withf("%s is required", name)
		}
	}
	return nil
}
