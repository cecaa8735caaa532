package buildconfig

// Set with -ldflags "-X github.com/Harshitk-cp/voicebridge/internal/buildconfig.version=..."
var (
	version = "dev"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// UserAgent identifies this build to Retell and Vapi.
func UserAgent() string {
	return "voicebridge/" + version
}

// VersionInfo is reported by the gateway's health and metrics endpoints.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": version,
		"commit":  commit,
	}
}
