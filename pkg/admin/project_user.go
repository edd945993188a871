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
	pathUsers = "users"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListProjectUsers returns a page of the users in a project. Use WithLimit
// and WithAfter to paginate.
func (c *Client) ListProjectUsers(ctx context.Context, projectID string, opts ...opt.Opt) (*schema.ListResponse[schema.ProjectUser], error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, pathOrganization, pathProjects, projectID, pathUsers)
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.ProjectUser]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProjectUser returns a user in a project
func (c *Client) GetProjectUser(ctx context.Context, projectID, userID string) (*schema.ProjectUser, error) {
	if err := projectUser(projectID, userID); err != nil {
		return nil, err
	}
	var response schema.ProjectUser
	if err := c.Get(ctx, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathUsers, userID)); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateProjectUser adds an organization user to a project with a role
func (c *Client) CreateProjectUser(ctx context.Context, projectID, userID string, role schema.ProjectUserRole) (*schema.ProjectUser, error) {
	if err := projectUser(projectID, userID); err != nil {
		return nil, err
	} else if !role.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid role: %q", role)
	}
	request := schema.ProjectUserRequest{UserID: userID, Role: role}
	var response schema.ProjectUser
	if err := c.Post(ctx, request, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathUsers)); err != nil {
		return nil, err
	}
	return &response, nil
}

// ModifyProjectUser changes the role of a user in a project
func (c *Client) ModifyProjectUser(ctx context.Context, projectID, userID string, role schema.ProjectUserRole) (*schema.ProjectUser, error) {
	if err := projectUser(projectID, userID); err != nil {
		return nil, err
	} else if !role.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid role: %q", role)
	}
	var response schema.ProjectUser
	if err := c.Post(ctx, schema.ProjectUserRoleRequest{Role: role}, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathUsers, userID)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteProjectUser removes a user from a project
func (c *Client) DeleteProjectUser(ctx context.Context, projectID, userID string) (*schema.DeletedObject, error) {
	if err := projectUser(projectID, userID); err != nil {
		return nil, err
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathUsers, userID)); err != nil {
		return nil, err
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func projectUser(projectID, userID string) error {
	if err := required("project id", projectID); err != nil {
		return err
	}
	return required("user id", userID)
}
