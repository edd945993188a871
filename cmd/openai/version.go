package main

import (
	// Packages
	version "github.com/mutablelogic/go-openai/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommands struct {
	Version VersionCommand `cmd:"" name:"version" help:"Print version information." group:"MISC"`
}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	return ctx.Write(version.Map(ctx.execName))
}
