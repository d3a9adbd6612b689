// Package utils provides common utility functions for the inventory tracker.
// It includes helpers for turning raw console input into typed values and
// other shared logic that doesn't fit into domain-specific packages.
package utils
