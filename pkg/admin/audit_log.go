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
// PUBLIC METHODS

// ListAuditLogs returns a page of audit log events, most recent first.
// Filter with WithEventTypes, WithActorIDs, WithActorEmails, WithProjectIDs,
// WithResourceIDs and the effective time options. Use WithLimit, WithAfter
// and WithBefore to paginate.
func (c *Client) ListAuditLogs(ctx context.Context, opts ...opt.Opt) (*schema.ListResponse[schema.AuditLog], error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Scalar parameters, then array filters as key[]
	query := o.Query(opt.LimitKey, opt.AfterKey, opt.BeforeKey, effectiveAfterKey, effectiveBeforeKey)
	for key, values := range httpclient.ArrayQuery(o, eventTypesKey, actorIDsKey, actorEmailsKey, projectIDsKey, resourceIDsKey) {
		query[key] = values
	}

	reqopts := []client.RequestOpt{client.OptPath(pathOrganization, "audit_logs")}
	if len(query) > 0 {
		reqopts = append(reqopts, client.OptQuery(query))
	}

	var response schema.ListResponse[schema.AuditLog]
	if err := c.Get(ctx, &response, reqopts...); err != nil {
		return nil, err
	}
	return &response, nil
}
