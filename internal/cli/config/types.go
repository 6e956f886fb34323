// Package config loads IslandAtlas configuration from file, environment,
// and command-line flags.
package config

// Defaults applied before any other configuration source.
const (
	DefaultBundlePath = "island_data.json"
	DefaultPort       = 8765
	DefaultOutput     = "text"
)

// Config holds the resolved configuration for all commands.
type Config struct {
	// BundlePath is the island data bundle to load.
	BundlePath string `koanf:"bundle"`

	// Port is the API server listen port.
	Port int `koanf:"port"`

	// Watch enables reloading the bundle when the file changes.
	Watch bool `koanf:"watch"`

	// Output selects the CLI output format (text or json).
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
