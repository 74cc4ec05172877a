package printcheck

import "strings"

// Config holds configuration for mesh file reconciliation.
type Config struct {
	// Source selects where mesh files are listed from (local, storage).
	Source string `mapstructure:"source" default:"local"`
	// Root is the project checkout the glob pattern is rooted at.
	Root string `mapstructure:"root" default:"."`
	// Glob is the pattern locating mesh files under Root (local source).
	Glob string `mapstructure:"glob" default:"STLs/**/*.stl"`
	// ExcludeDirs is a comma-separated list of path prefixes to skip.
	ExcludeDirs string `mapstructure:"exclude_dirs"`
	// ExcludeStrings is a comma-separated list of substrings to skip,
	// matched case-insensitively.
	ExcludeStrings string `mapstructure:"exclude_strings"`
	// Prefix is the object prefix listed from the bucket (storage source).
	Prefix string `mapstructure:"prefix" default:"STLs/"`
	// Extension filters bucket listings down to mesh files.
	Extension string `mapstructure:"extension" default:".stl"`
	// Threshold is the fuzzy-match cutoff ratio.
	Threshold float64 `mapstructure:"threshold" default:"0.8"`
	// OutDir is the directory the color-results files are written to.
	OutDir string `mapstructure:"out_dir" default:"."`
}

const (
	SourceLocal   = "local"
	SourceStorage = "storage"
)

// ExcludeDirList returns the configured directory prefixes.
func (c Config) ExcludeDirList() []string {
	return splitList(c.ExcludeDirs)
}

// ExcludeStringList returns the configured substrings.
func (c Config) ExcludeStringList() []string {
	return splitList(c.ExcludeStrings)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
