package admin

import (
	"context"
	"strings"

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
	pathInvites = "invites"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - USERS

// ListUsers returns a page of the users in the organization
func (c *Client) ListUsers(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.User], error) {
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, pathOrganization, pathUsers)
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.User]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetUser returns a user in the organization
func (c *Client) GetUser(ctx context.Context, id string) (*schema.User, error) {
	if err := required("user id", id); err != nil {
		return nil, err
	}
	var response schema.User
	if err := c.Get(ctx, &response, client.OptPath(pathOrganization, pathUsers, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// ModifyUser changes the organization role of a user
func (c *Client) ModifyUser(ctx context.Context, id string, role schema.OrganizationRole) (*schema.User, error) {
	if err := required("user id", id); err != nil {
		return nil, err
	} else if !role.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid role: %q", role)
	}
	var response schema.User
	if err := c.Post(ctx, schema.UserRoleRequest{Role: role}, &response, client.OptPath(pathOrganization, pathUsers, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteUser removes a user from the organization
func (c *Client) DeleteUser(ctx context.Context, id string) (*schema.DeletedObject, error) {
	if err := required("user id", id); err != nil {
		return nil, err
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath(pathOrganization, pathUsers, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - INVITES

// ListInvites returns a page of the invites to the organization
func (c *Client) ListInvites(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.Invite], error) {
	reqopts, err := httpclient.Query(opts, []string{opt.LimitKey, opt.AfterKey}, pathOrganization, pathInvites)
	if err != nil {
		return nil, err
	}
	var response schema.ListResponse[schema.Invite]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateInvite invites a user to the organization by email
func (c *Client) CreateInvite(ctx context.Context, email string, role schema.OrganizationRole) (*schema.Invite, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, openai.ErrBadParameter.Withf("invalid email: %q", email)
	} else if !role.Valid() {
		return nil, openai.ErrBadParameter.Withf("invalid role: %q", role)
	}
	var response schema.Invite
	if err := c.Post(ctx, schema.InviteRequest{Email: email, Role: role}, &response, client.OptPath(pathOrganization, pathInvites)); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetInvite returns an invite
func (c *Client) GetInvite(ctx context.Context, id string) (*schema.Invite, error) {
	if err := required("invite id", id); err != nil {
		return nil, err
	}
	var response schema.Invite
	if err := c.Get(ctx, &response, client.OptPath(pathOrganization, pathInvites, id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteInvite deletes a pending invite. Accepted invites cannot be deleted.
func (c *Client) DeleteInvite(ctx context.Context, id string) (*schema.DeletedObject, error) {
	if err := required("invite id", id); err != nil {
		return nil, err
	}
	var response schema.DeletedObject
	if err := c.Delete(ctx, &response, client.OptPath(pathOrganization, pathInvites, id)); err != nil {
		return nil, err
	}
	return &response, nil
}
