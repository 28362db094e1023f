package cmd

import (
	"bytes"
	"fmt"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/storage"
	"github.com/spf13/cobra"
)

func newContentExportCmd(opts *contentOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the normalized mapping to a file",
		Long: `Export validates the mapping and writes it back as normalized YAML. Use "-" as
the output to print it instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := opts.loader()
			if err != nil {
				return err
			}
			store, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			data, err := content.Marshal(store.Bundle())
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			n, err := storage.NewAferoStore(opts.fs).Save(cmd.Context(), out, bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("export content: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d bytes to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file, or - for stdout")
	return cmd
}
