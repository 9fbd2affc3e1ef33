package internal

import "fmt"

// Branch.Version-Prerelease+Metadata
var (
	Branch     = "main"
	Version    = "0.1.0"
	Prerelease = ""
	Metadata   = "dev"
)

func FullVersion() string {
	version := Version

	if Prerelease != "" {
		version += "-" + Prerelease
	}

	if Metadata != "" {
		version += "+" + Metadata
	}

	return fmt.Sprintf("%s (%s)", version, Branch)
}
