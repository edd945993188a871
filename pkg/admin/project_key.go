package admin

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	pathAPIKeys         = "api_keys"
	pathServiceAccounts = "service_accounts"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - API KEYS

// ListProjectAPIKeys returns a page of the API keys in a project
func (c *Client) ListProjectAPIKeys(ctx context.Context, projectID string, opts ...opt.Opt) (*schema.ListResponse[schema.ProjectAPIKey], error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, pathOrganization, pathProjects, projectID, pathAPIKeys)
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.ProjectAPIKey]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProjectAPIKey returns an API key in a project. Only the redacted value
// of the key is returned.
func (c *Client) GetProjectAPIKey(ctx context.Context, projectID, keyID string) (*schema.ProjectAPIKey, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	} else if err := required("key id", keyID); err != nil {
		return nil, err
	}
	var response schema.ProjectAPIKey
	if err := c.Get(ctx, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathAPIKeys, keyID)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteProjectAPIKey revokes an API key in a project
func (c *Client) DeleteProjectAPIKey(ctx context.Context, projectID, keyID string) (*schema.DeletedObject, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	} else if err := required("key id", keyID); err != nil {
		return nil, err
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathAPIKeys, keyID)); err != nil {
		return nil, err
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SERVICE ACCOUNTS

// ListProjectServiceAccounts returns a page of the service accounts in a project
func (c *Client) ListProjectServiceAccounts(ctx context.Context, projectID string, opts ...opt.Opt) (*schema.ListResponse[schema.ProjectServiceAccount], error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	}
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, pathOrganization, pathProjects, projectID, pathServiceAccounts)
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.ProjectServiceAccount]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateProjectServiceAccount creates a service account in a project. The
// unredacted API key for the account is returned only once, in the response.
func (c *Client) CreateProjectServiceAccount(ctx context.Context, projectID, name string) (*schema.ProjectServiceAccount, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	} else if err := required("service account name", name); err != nil {
		return nil, err
	}
	var response schema.ProjectServiceAccount
	if err := c.Post(ctx, schema.ProjectServiceAccountRequest{Name: name}, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathServiceAccounts)); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProjectServiceAccount returns a service account in a project
func (c *Client) GetProjectServiceAccount(ctx context.Context, projectID, accountID string) (*schema.ProjectServiceAccount, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	} else if err := required("service account id", accountID); err != nil {
		return nil, err
	}
	var response schema.ProjectServiceAccount
	if err := c.Get(ctx, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathServiceAccounts, accountID)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteProjectServiceAccount deletes a service account and its keys
func (c *Client) DeleteProjectServiceAccount(ctx context.Context, projectID, accountID string) (*schema.DeletedObject, error) {
	if err := required("project id", projectID); err != nil {
		return nil, err
	} else if err := required("service account id", accountID); err != nil {
		return nil, err
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath(pathOrganization, pathProjects, projectID, pathServiceAccounts, accountID)); err != nil {
		return nil, err
	}
	return &response, nil
}
