package admin

import (
	"time"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	opt "github.com/mutablelogic/go-openai/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	includeArchivedKey = "include_archived"
	eventTypesKey      = "event_types"
	actorIDsKey        = "actor_ids"
	actorEmailsKey     = "actor_emails"
	projectIDsKey      = "project_ids"
	resourceIDsKey     = "resource_ids"
	effectiveAfterKey  = "effective_at[gt]"
	effectiveBeforeKey = "effective_at[lt]"
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithIncludeArchived includes archived projects when listing projects
func WithIncludeArchived() opt.Opt {
	return opt.SetBool(includeArchivedKey, true)
}

// WithEventTypes filters audit logs by event type, for example
// project.created or api_key.deleted
func WithEventTypes(types ...string) opt.Opt {
	return nonEmpty(eventTypesKey, "event type", types)
}

// WithActorIDs filters audit logs by the user or service account ID
// which performed the action
func WithActorIDs(ids ...string) opt.Opt {
	return nonEmpty(actorIDsKey, "actor id", ids)
}

// WithActorEmails filters audit logs by the email of the user which
// performed the action
func WithActorEmails(emails ...string) opt.Opt {
	return nonEmpty(actorEmailsKey, "actor email", emails)
}

// WithProjectIDs filters audit logs by project
func WithProjectIDs(ids ...string) opt.Opt {
	return nonEmpty(projectIDsKey, "project id", ids)
}

// WithResourceIDs filters audit logs by the ID of the affected resource
func WithResourceIDs(ids ...string) opt.Opt {
	return nonEmpty(resourceIDsKey, "resource id", ids)
}

// WithEffectiveAfter returns audit logs which took effect after t
func WithEffectiveAfter(t time.Time) opt.Opt {
	if t.IsZero() {
		return opt.Unset(effectiveAfterKey)
	}
	return opt.SetInt(effectiveAfterKey, int(t.Unix()))
}

// WithEffectiveBefore returns audit logs which took effect before t
func WithEffectiveBefore(t time.Time) opt.Opt {
	if t.IsZero() {
		return opt.Unset(effectiveBeforeKey)
	}
	return opt.SetInt(effectiveBeforeKey, int(t.Unix()))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func nonEmpty(key, name string, values []string) opt.Opt {
	for _, value := range values {
		if value == "" {
			return opt.Error(openai.ErrBadParameter.Withf("empty %s", name))
		}
	}
	return opt.AddString(key, values...)
}
