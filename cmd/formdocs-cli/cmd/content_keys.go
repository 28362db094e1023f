package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/spf13/cobra"
)

func newContentKeysCmd(opts *contentOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the content keys, optionally with their text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				for _, key := range content.Keys() {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			}

			loader, err := opts.loader()
			if err != nil {
				return err
			}
			store, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTEXT")
			for _, key := range content.Keys() {
				f, err := store.Lookup(key, lang)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", key, f.Text)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Show each key's text in this language")
	return cmd
}
