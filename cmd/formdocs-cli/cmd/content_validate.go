package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newContentValidateCmd(opts *contentOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Load a mapping and report every problem found",
		Long: `Validate decodes and validates a content mapping exactly like the server does
at startup. Every unknown key, missing default-language entry and malformed
field is reported, not just the first one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			loader, err := opts.loader()
			if err != nil {
				return err
			}

			store, err := loader.Load(cmd.Context())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s is invalid:\n", loader.Path())
				for _, problem := range problems(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", problem)
				}
				return errors.New("content validation failed")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (version %s, languages %s, %d references)\n",
				loader.Path(), store.Version(), strings.Join(store.Languages(), ", "), len(store.References()))
			return nil
		},
	}
}

// problems flattens joined errors into one message per problem.
func problems(err error) []string {
	var lines []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
