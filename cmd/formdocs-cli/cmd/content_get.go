package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/spf13/cobra"
)

func newContentGetCmd(opts *contentOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Show one entry in a language",
		Long: `Get prints the entry for a key in the requested language, applying the same
fallback to the default language the site uses. Table entries are printed
as rows.

Examples:
  formdocs-cli content get copy --lang ja
  formdocs-cli content get builderRules`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := opts.loader()
			if err != nil {
				return err
			}
			store, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			if lang == "" {
				lang = store.DefaultLanguage().String()
			}

			f, err := store.Lookup(content.Key(args[0]), lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f.Text != "" {
				fmt.Fprintln(out, f.Text)
			}
			if len(f.Rows) > 0 {
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, row := range f.Rows {
					fmt.Fprintf(w, "%s\t%s\t%s\n", row.Name, row.Type, row.Description)
				}
				return w.Flush()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language code (default: the mapping's default language)")
	return cmd
}
