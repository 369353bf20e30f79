package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nodegen/pkg/orchestrator"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := orchestrator.DefaultRegistry()
			if err != nil {
				return err
			}
			for _, name := range registry.List() {
				renderer, err := registry.Get(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", name, renderer.ContentType()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
