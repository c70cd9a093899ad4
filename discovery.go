// FILE: lixenwraith/lightconfig/discovery.go
package lightconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

// FileDiscoveryOptions configures automatic config file discovery
type FileDiscoveryOptions struct {
	// Base name of config file (without extension), also the XDG subdirectory
	Name string

	// Extensions to try (in order); the first is used for a new file
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for explicit path
	EnvVar string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".xml", ".toml", ".yaml", ".yml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery enables automatic config file discovery.
// The file is resolved at Build, on the WithFs filesystem if given, and
// only when WithFile was not used.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// discoverFile resolves the builder's file path from its discovery options
func (b *Builder) discoverFile() string {
	if b.file != "" || b.discovery == nil {
		return b.file
	}
	fs := b.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return DiscoverFile(fs, *b.discovery)
}

// DiscoverFile resolves the configuration file location. An explicit
// environment variable wins; otherwise the first existing candidate in the
// search paths is returned. When none exists, the path a new file should be
// created at is returned: under the XDG config home if enabled, else the
// first search path.
func DiscoverFile(fs afero.Fs, opts FileDiscoveryOptions) string {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".xml"}
	}

	searchPaths := discoveryPaths(opts)
	for _, dir := range searchPaths {
		for _, ext := range exts {
			path := filepath.Join(dir, opts.Name+ext)
			if ok, _ := afero.Exists(fs, path); ok {
				return path
			}
		}
	}

	// No file found is not an error, Save creates it
	fileName := opts.Name + exts[0]
	if opts.UseXDG {
		return filepath.Join(xdg.ConfigHome, opts.Name, fileName)
	}
	if len(searchPaths) > 0 {
		return filepath.Join(searchPaths[0], fileName)
	}
	return fileName
}

// discoveryPaths returns the search directories in priority order
func discoveryPaths(opts FileDiscoveryOptions) []string {
	var searchPaths []string

	// Custom paths first
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, getXDGConfigPaths(opts.Name)...)
	}

	return searchPaths
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	paths := []string{filepath.Join(xdg.ConfigHome, appName)}
	for _, dir := range xdg.ConfigDirs {
		paths = append(paths, filepath.Join(dir, appName))
	}
	return paths
}
