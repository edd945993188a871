package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	admin "github.com/mutablelogic/go-openai/pkg/admin"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ProjectCommands struct {
	ListProjects      ListProjectsCommand      `cmd:"" name:"projects" help:"List projects." group:"PROJECT"`
	ListProjectUsers  ListProjectUsersCommand  `cmd:"" name:"project-users" help:"List the users in a project." group:"PROJECT"`
	GetProjectUser    GetProjectUserCommand    `cmd:"" name:"project-user" help:"Get a user in a project." group:"PROJECT"`
	AddProjectUser    AddProjectUserCommand    `cmd:"" name:"add-project-user" help:"Add a user to a project." group:"PROJECT"`
	ModifyProjectUser ModifyProjectUserCommand `cmd:"" name:"modify-project-user" help:"Change the role of a user in a project." group:"PROJECT"`
	RemoveProjectUser RemoveProjectUserCommand `cmd:"" name:"remove-project-user" help:"Remove a user from a project." group:"PROJECT"`
}

type ListProjectsCommand struct {
	ListFlags
	Archived bool `name:"archived" help:"Include archived projects"`
}

type ListProjectUsersCommand struct {
	ListFlags
	Project string `arg:"" name:"project" help:"Project identifier"`
}

type GetProjectUserCommand struct {
	Project string `arg:"" name:"project" help:"Project identifier"`
	User    string `arg:"" name:"user" help:"User identifier"`
}

type AddProjectUserCommand struct {
	Project string `arg:"" name:"project" help:"Project identifier"`
	User    string `arg:"" name:"user" help:"User identifier"`
	Role    string `name:"role" enum:"owner,member" default:"member" help:"Role in the project (owner or member)"`
}

type ModifyProjectUserCommand struct {
	Project string `arg:"" name:"project" help:"Project identifier"`
	User    string `arg:"" name:"user" help:"User identifier"`
	Role    string `arg:"" name:"role" enum:"owner,member" help:"Role in the project (owner or member)"`
}

type RemoveProjectUserCommand struct {
	Project string `arg:"" name:"project" help:"Project identifier"`
	User    string `arg:"" name:"user" help:"User identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListProjectsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListProjectsCommand")
	defer func() { endSpan(err) }()

	opts := cmd.ListFlags.opts()
	if cmd.Archived {
		opts = append(opts, admin.WithIncludeArchived())
	}
	response, err := client.ListProjects(parent, opts...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *ListProjectUsersCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListProjectUsersCommand",
		attribute.String("project", cmd.Project),
	)
	defer func() { endSpan(err) }()

	response, err := client.ListProjectUsers(parent, cmd.Project, cmd.ListFlags.opts()...)
	if err != nil {
		return err
	}
	return ctx.Write(response)
}

func (cmd *GetProjectUserCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetProjectUserCommand",
		attribute.String("project", cmd.Project),
		attribute.String("user", cmd.User),
	)
	defer func() { endSpan(err) }()

	user, err := client.GetProjectUser(parent, cmd.Project, cmd.User)
	if err != nil {
		return err
	}
	return ctx.Write(user)
}

func (cmd *AddProjectUserCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AddProjectUserCommand",
		attribute.String("project", cmd.Project),
		attribute.String("user", cmd.User),
		attribute.String("role", cmd.Role),
	)
	defer func() { endSpan(err) }()

	user, err := client.CreateProjectUser(parent, cmd.Project, cmd.User, schema.ProjectUserRole(cmd.Role))
	if err != nil {
		return err
	}
	return ctx.Write(user)
}

func (cmd *ModifyProjectUserCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ModifyProjectUserCommand",
		attribute.String("project", cmd.Project),
		attribute.String("user", cmd.User),
		attribute.String("role", cmd.Role),
	)
	defer func() { endSpan(err) }()

	user, err := client.ModifyProjectUser(parent, cmd.Project, cmd.User, schema.ProjectUserRole(cmd.Role))
	if err != nil {
		return err
	}
	return ctx.Write(user)
}

func (cmd *RemoveProjectUserCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Admin()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "RemoveProjectUserCommand",
		attribute.String("project", cmd.Project),
		attribute.String("user", cmd.User),
	)
	defer func() { endSpan(err) }()

	result, err := client.DeleteProjectUser(parent, cmd.Project, cmd.User)
	if err != nil {
		return err
	}
	return ctx.Write(result)
}
