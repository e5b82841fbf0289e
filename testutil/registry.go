package testutil

import (
	"time"

	"mockmcp"
)

// NewTestRegistry returns a Registry with long timeout and panic recovery enabled,
// suitable for tests.
func NewTestRegistry(tools ...mockmcp.Tool) *mockmcp.Registry {
	reg := mockmcp.NewRegistry(
		mockmcp.WithDefaultTimeout(30*time.Second),
		mockmcp.WithRecoverPanics(true),
	)
	for _, t := range tools {
		reg.Register(t)
	}
	return reg
}
