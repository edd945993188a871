package httpclient

import (
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Limits on the page size of list requests
	MinLimit = 1
	MaxLimit = 100
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLimit sets the number of objects to return, between 1 and 100
func WithLimit(limit uint) opt.Opt {
	if limit < MinLimit || limit > MaxLimit {
		return opt.Error(openai.ErrBadParameter.Withf("limit must be between %d and %d", MinLimit, MaxLimit))
	}
	return opt.SetUint(opt.LimitKey, limit)
}

// WithAfter sets the cursor, returning objects after the given object ID
func WithAfter(id string) opt.Opt {
	if id == "" {
		return opt.Unset(opt.AfterKey)
	}
	return opt.SetString(opt.AfterKey, id)
}

// WithBefore sets the cursor, returning objects before the given object ID
func WithBefore(id string) opt.Opt {
	if id == "" {
		return opt.Unset(opt.BeforeKey)
	}
	return opt.SetString(opt.BeforeKey, id)
}

// WithOrder sets the sort order by creation time, either asc or desc
func WithOrder(order string) opt.Opt {
	switch order {
	case "asc", "desc":
		return opt.SetString(opt.OrderKey, order)
	case "":
		return opt.Unset(opt.OrderKey)
	}
	return opt.Error(openai.ErrBadParameter.Withf("order must be asc or desc: %q", order))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query applies options and returns the request options for a GET on path.
// Only the given keys are sent as query parameters.
func Query(opts []opt.Opt, keys []string, path ...any) ([]client.RequestOpt, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return QueryFromOpts(o, keys, path...), nil
}

// QueryFromOpts returns the request options for path, with the given keys
// from already-applied options sent as query parameters
func QueryFromOpts(o *opt.Options, keys []string, path ...any) []client.RequestOpt {
	result := []client.RequestOpt{client.OptPath(path...)}
	if q := o.Query(keys...); len(q) > 0 {
		result = append(result, client.OptQuery(q))
	}
	return result
}

// ListKeys are the query parameters used by cursor-paginated lists
var ListKeys = []string{opt.LimitKey, opt.AfterKey, opt.BeforeKey, opt.OrderKey}

// ArrayQuery returns query values for array keys, with each key renamed to
// key[] as list filters expect
func ArrayQuery(o *opt.Options, keys ...string) url.Values {
	result := make(url.Values)
	for _, key := range keys {
		if values := o.GetStringArray(key); len(values) > 0 {
			result[key+"[]"] = values
		}
	}
	return result
}
