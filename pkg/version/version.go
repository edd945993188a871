package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

const (
	// Product name sent in the User-Agent header
	Product = "go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short revision of the build
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// UserAgent returns the value of the User-Agent header for API requests
func UserAgent() string {
	return Product + "/" + Version()
}

// Map returns the build metadata for an executable
func Map(execName string) map[string]string {
	metadata := map[string]string{
		"name":       execName,
		"version":    Version(),
		"user_agent": UserAgent(),
		"compiler":   runtime.Version(),
		"platform":   runtime.GOOS + "/" + runtime.GOARCH,
	}
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return metadata
	}
	if info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}

	// VCS settings are only present when built from a checkout
	keys := map[string]string{"vcs.revision": "hash", "vcs.time": "build_time"}
	for _, s := range info.Settings {
		if key, ok := keys[s.Key]; ok && s.Value != "" {
			metadata[key] = s.Value
		} else if s.Key == "vcs.modified" && s.Value == "true" {
			metadata["modified"] = s.Value
		}
	}
	return metadata
}

// JSON returns the build metadata as indented JSON
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(Map(execName), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
