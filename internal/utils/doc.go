// Package utils provides small helpers shared by the commands,
// such as path cleanup, directory creation and atomic file writes.
package utils
