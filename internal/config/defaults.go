package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultFixtureRoot is the default test fixture repository, relative to the project path
	DefaultFixtureRoot = "test-resources/test-cases"
	// DefaultVMPath is the default path to the VM binary under test
	DefaultVMPath = "target/debug/vm"
	// DefaultJavacPath is the default Java compiler executable
	DefaultJavacPath = "javac"
	// DefaultMarker is the prefix identifying program print output in the VM's stream
	DefaultMarker = "OUT: "
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "harness-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)

// Environment variables consulted at startup (a .env file is honored if present)
const (
	// EnvRuntimeClasses points at the directory of pre-extracted runtime-library
	// classes the VM needs to resolve standard-library references
	EnvRuntimeClasses = "JTH_RUNTIME_CLASSES"
	// EnvVMPath overrides the VM binary path
	EnvVMPath = "JTH_VM"
	// EnvJavacPath overrides the Java compiler path
	EnvJavacPath = "JTH_JAVAC"
)
