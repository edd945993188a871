package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES - Enumerations
//
// Reference: https://platform.openai.com/docs/api-reference/projects

// The role of a user within a project
type ProjectUserRole string

const (
	ProjectRoleOwner  ProjectUserRole = "owner"
	ProjectRoleMember ProjectUserRole = "member"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Projects

// ProjectRequest is the request body to create or modify a project
type ProjectRequest struct {
	Name string `json:"name"`
}

// Project is a project within the organization
type Project struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"created_at"`
	ArchivedAt *int64 `json:"archived_at,omitempty"`
	Status     string `json:"status"` // active or archived
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Project users

// ProjectUserRequest is the request body to add a user to a project
type ProjectUserRequest struct {
	UserID string          `json:"user_id"`
	Role   ProjectUserRole `json:"role"`
}

// ProjectUserRoleRequest is the request body to modify a user's role
type ProjectUserRoleRequest struct {
	Role ProjectUserRole `json:"role"`
}

// ProjectUser is a user's membership of a project
type ProjectUser struct {
	ID      string          `json:"id"`
	Object  string          `json:"object"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    ProjectUserRole `json:"role"`
	AddedAt int64           `json:"added_at"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - Project API keys and service accounts

// ProjectAPIKey describes a key. The full key value is never returned.
type ProjectAPIKey struct {
	ID            string              `json:"id"`
	Object        string              `json:"object"`
	Name          string              `json:"name"`
	RedactedValue string              `json:"redacted_value"`
	CreatedAt     int64               `json:"created_at"`
	LastUsedAt    int64               `json:"last_used_at,omitempty"`
	Owner         *ProjectAPIKeyOwner `json:"owner,omitempty"`
}

type ProjectAPIKeyOwner struct {
	Type           string                 `json:"type"` // user or service_account
	User           *ProjectUser           `json:"user,omitempty"`
	ServiceAccount *ProjectServiceAccount `json:"service_account,omitempty"`
}

// ProjectServiceAccountRequest is the request body to create a service account
type ProjectServiceAccountRequest struct {
	Name string `json:"name"`
}

// ProjectServiceAccount is a bot user of a project
type ProjectServiceAccount struct {
	ID        string          `json:"id"`
	Object    string          `json:"object"`
	Name      string          `json:"name"`
	Role      ProjectUserRole `json:"role"`
	CreatedAt int64           `json:"created_at"`
	APIKey    *ServiceAPIKey  `json:"api_key,omitempty"` // create only
}

// ServiceAPIKey is the unredacted key, returned once on creation
type ServiceAPIKey struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	CreatedAt int64  `json:"created_at"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Valid returns true if the role is known
func (r ProjectUserRole) Valid() bool {
	return r == ProjectRoleOwner || r == ProjectRoleMember
}

func (p Project) String() string {
	return Stringify(p)
}

func (u ProjectUser) String() string {
	return Stringify(u)
}
