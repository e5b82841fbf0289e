// mockmcp is a command line tool that serves a catalog of mock MCP tools over
// stdio, for exercising agents against fabricated external APIs.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
