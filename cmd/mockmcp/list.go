package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mockmcp"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tools the serve command would expose",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		for _, t := range reg.GetAllTools() {
			var notes []string
			if tm, ok := t.(mockmcp.ToolMetadata); ok {
				if tags := tm.Tags(); len(tags) > 0 {
					notes = append(notes, strings.Join(tags, ","))
				}
				if tm.IsStateful() {
					notes = append(notes, "stateful")
				}
			}
			suffix := ""
			if len(notes) > 0 {
				suffix = " [" + strings.Join(notes, " ") + "]"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n    %s\n", t.Name(), suffix, t.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
