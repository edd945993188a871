package opt

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Keys which are shared between endpoint families. Where a key is also a
// query parameter, the key is the parameter name.
const (
	// Pagination
	LimitKey  = "limit"
	AfterKey  = "after"
	BeforeKey = "before"
	OrderKey  = "order"

	// Sampling
	ModelKey       = "model"
	TemperatureKey = "temperature"
	TopPKey        = "top_p"
	SeedKey        = "seed"
	UserKey        = "user"
	PromptKey      = "prompt"
	NKey           = "n"

	// Arbitrary values
	MetadataKey = "metadata"
	StreamKey   = "stream"
	ToolsKey    = "tools"
)
