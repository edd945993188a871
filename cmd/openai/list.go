package main

import (
	// Packages
	api "github.com/mutablelogic/go-openai/pkg/api"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ListFlags are the pagination flags for list commands
type ListFlags struct {
	Limit *uint  `name:"limit" help:"Number of objects to return, between 1 and 100"`
	After string `name:"after" help:"Return objects after this object identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (flags ListFlags) opts() []opt.Opt {
	opts := []opt.Opt{api.WithAfter(flags.After)}
	if flags.Limit != nil {
		opts = append(opts, api.WithLimit(*flags.Limit))
	}
	return opts
}
