// Package utils provides common utility functions for the bom-manager application.
// It includes small helpers for deterministic map iteration and other shared
// logic that doesn't fit into domain-specific packages.
package utils
