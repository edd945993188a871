package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model describes a model offering which can be used with the API
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object,omitempty"`
	Created int64  `json:"created,omitempty"`
	OwnedBy string `json:"owned_by,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}
