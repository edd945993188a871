package schema

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Enumerations
//
// Reference: https://platform.openai.com/docs/api-reference/administration

// The role of a user within the organization
type OrganizationRole string

const (
	OrganizationRoleOwner  OrganizationRole = "owner"
	OrganizationRoleReader OrganizationRole = "reader"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Users and invites

// User is a member of the organization
type User struct {
	ID      string           `json:"id"`
	Object  string           `json:"object"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Role    OrganizationRole `json:"role"`
	AddedAt int64            `json:"added_at"`
}

// UserRoleRequest is the request body to modify a user
type UserRoleRequest struct {
	Role OrganizationRole `json:"role"`
}

// InviteRequest is the request body to invite a user
type InviteRequest struct {
	Email string           `json:"email"`
	Role  OrganizationRole `json:"role"`
}

// Invite is an invitation to join the organization
type Invite struct {
	ID         string           `json:"id"`
	Object     string           `json:"object"`
	Email      string           `json:"email"`
	Role       OrganizationRole `json:"role"`
	Status     string           `json:"status"` // accepted, expired or pending
	InvitedAt  int64            `json:"invited_at"`
	ExpiresAt  int64            `json:"expires_at"`
	AcceptedAt int64            `json:"accepted_at,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Audit logs

// AuditLog is a user action or configuration change. The event-specific
// payload, which is keyed by the event type on the wire, is held in Details.
type AuditLog struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	EffectiveAt int64           `json:"effective_at"`
	Project     *AuditLogRef    `json:"project,omitempty"`
	Actor       *AuditLogActor  `json:"actor,omitempty"`
	Details     json.RawMessage `json:"-"`
}

type AuditLogRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type AuditLogActor struct {
	Type    string           `json:"type"` // session or api_key
	Session *AuditLogSession `json:"session,omitempty"`
	APIKey  *AuditLogAPIKey  `json:"api_key,omitempty"`
}

type AuditLogSession struct {
	User      *AuditLogUser `json:"user,omitempty"`
	IPAddress string        `json:"ip_address,omitempty"`
}

type AuditLogAPIKey struct {
	ID   string        `json:"id,omitempty"`
	Type string        `json:"type"` // user or service_account
	User *AuditLogUser `json:"user,omitempty"`
}

type AuditLogUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (l AuditLog) MarshalJSON() ([]byte, error) {
	type alias AuditLog
	data, err := json.Marshal(alias(l))
	if err != nil || len(l.Details) == 0 || l.Type == "" {
		return data, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	fields[l.Type] = l.Details
	return json.Marshal(fields)
}

func (l *AuditLog) UnmarshalJSON(data []byte) error {
	type alias AuditLog
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	v.Details = fields[v.Type]
	*l = AuditLog(v)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Valid returns true if the role is known
func (r OrganizationRole) Valid() bool {
	return r == OrganizationRoleOwner || r == OrganizationRoleReader
}

func (u User) String() string {
	return Stringify(u)
}

func (i Invite) String() string {
	return Stringify(i)
}

func (l AuditLog) String() string {
	return Stringify(l)
}
