package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newContentReferencesCmd(opts *contentOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "references",
		Short: "List the reference pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := opts.loader()
			if err != nil {
				return err
			}
			store, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			lang := store.DefaultLanguage().String()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tEXAMPLES\tPATH")
			for _, slug := range store.References() {
				ref, err := store.Reference(slug, lang)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t/docs/%s\n", slug, ref.Name, len(ref.Examples), slug)
			}
			return w.Flush()
		},
	}
}
