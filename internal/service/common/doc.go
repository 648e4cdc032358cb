// Package common holds helpers shared by several services.
//
// It provides a utility to detect the current system actor
// (hostname/username) so builds can be attributed in the logs.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
