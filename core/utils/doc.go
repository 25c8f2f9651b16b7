// Package utils provides common utility functions for the ui-server application.
// It includes helper functions for type conversion of raw configuration values
// and other shared logic that doesn't fit into domain-specific packages.
package utils
