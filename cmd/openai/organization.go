package main

import (
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type OrganizationCommands struct {
	ListUsers     ListUsersCommand     `cmd:"" name:"users" help:"List the users in the organization." group:"ORGANIZATION"`
	ListInvites   ListInvitesCommand   `cmd:"" name:"invites" help:"List invites to the organization." group:"ORGANIZATION"`
	ListAuditLogs ListAuditLogsCommand `cmd:"" name:"audit-logs" help:"List audit log events." group:"ORGANIZATION"`
}

type ListUsersCommand struct {
	ListFlags
}

type ListInvitesCommand struct {
	ListFlags
}

type ListAuditLogsCommand struct {
	ListFlags
	EventTypes  []string      `name:"type" help:"Only return events of these types"`
	ActorEmails []string      `name:"actor" help:"Only return events by these actors, by email"`
	Projects    []string      `name:"in-project" help:"Only return events in these projects"`
	Since       time.Duration `name:"since" help:"Only return events within this duration of now"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListUsersCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListUsersCommand")
	defer func() { endSpan(err) }()

	response, err := client.ListUsers(parent, cmd.ListFlags.opts()...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *ListInvitesCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListInvitesCommand")
	defer func() { endSpan(err) }()

	response, err := client.ListInvites(parent, cmd.ListFlags.opts()...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *ListAuditLogsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListAuditLogsCommand")
	defer func() { endSpan(err) }()

	opts := cmd.ListFlags.opts()
	if len(cmd.EventTypes) > 0 {
		opts = append(opts, admin.WithEventTypes(cmd.EventTypes...))
	}
	if len(cmd.ActorEmails) > 0 {
		opts = append(opts, admin.WithActorEmails(cmd.ActorEmails...))
	}
	if len(cmd.Projects) > 0 {
		opts = append(opts, admin.WithProjectIDs(cmd.Projects...))
	}
	if cmd.Since > 0 {
		opts = append(opts, admin.WithEffectiveAfter(time.Now().Add(-cmd.Since)))
	}
	response, err := client.ListAuditLogs(parent, opts...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}
