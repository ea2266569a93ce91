package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.1.0"

	// Modules
	Suite        = "v1.0.0"
	Benchmark    = "v1.1.0"
	Report       = "v0.2.0"
	Sanity_check = "v1.1.0"
)
