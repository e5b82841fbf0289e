// Package servers aggregates the built-in mock server families and registers them
// into a Registry. Each family lives in its own subpackage and mirrors one simulated
// upstream MCP server.
package servers

import (
	"fmt"

	"mockmcp"
	"mockmcp/mockapi"
	"mockmcp/servers/coingecko"
	"mockmcp/servers/editor"
	"mockmcp/servers/gametrends"
	"mockmcp/servers/leetcode"
	"mockmcp/servers/nodecatalog"
	"mockmcp/servers/weather"
)

// RegisterAll builds every built-in mock tool against src and registers them in reg.
// Tool names are unique across families; a clash is a programming error and surfaces
// as the later registration replacing the earlier one, so keep names distinct.
func RegisterAll(reg *mockmcp.Registry, src *mockapi.Source) error {
	builders := []struct {
		family string
		build  func() ([]mockmcp.Tool, error)
	}{
		{"weather", func() ([]mockmcp.Tool, error) { return weather.Tools(src) }},
		{"leetcode", leetcode.Tools},
		{"coingecko", coingecko.Tools},
		{"nodecatalog", nodecatalog.Tools},
		{"gametrends", func() ([]mockmcp.Tool, error) { return gametrends.Tools(src) }},
		{"editor", editor.Tools},
	}
	for _, b := range builders {
		tools, err := b.build()
		if err != nil {
			return fmt.Errorf("building %s tools: %w", b.family, err)
		}
		for _, t := range tools {
			reg.Register(t)
		}
	}
	return nil
}
