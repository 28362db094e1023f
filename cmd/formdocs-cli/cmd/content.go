package cmd

import (
	"github.com/nfrund/formdocs/internal/config"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type contentOptions struct {
	path string
	fs   afero.Fs
}

// loader returns a loader for the mapping named by --content, falling back to
// FORMDOCS_CONTENT_PATH and then to the built-in mapping.
func (o *contentOptions) loader() (*content.Loader, error) {
	path := o.path
	if path == "" {
		cfg, err := config.Parse()
		if err != nil {
			return nil, err
		}
		path = cfg.GetContentPath()
	}
	if path == "" {
		return content.NewEmbeddedLoader(), nil
	}
	return content.NewLoader(storage.NewAferoStore(o.fs), path), nil
}

func newContentCmd() *cobra.Command {
	opts := &contentOptions{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Validate, inspect and export the localized content mapping",
		Long: `The content command works on the YAML mapping that holds every localized
string and reference page of the site.

Available subcommands:
  validate    Load a mapping and report every problem found
  keys        List the content keys, optionally with their text
  get         Show one entry in a language
  references  List the reference pages
  export      Write the normalized mapping to a file

Examples:
  # Check a mapping before deploying it
  formdocs-cli content validate ./content.yaml

  # Show the Portuguese copy of the "props" header
  formdocs-cli content get props --lang pt

  # Normalize the built-in mapping into a file
  formdocs-cli content export --out content.yaml`,
	}
	cmd.PersistentFlags().StringVarP(&opts.path, "content", "c", "", "Path to the content mapping (default: FORMDOCS_CONTENT_PATH or the built-in mapping)")

	cmd.AddCommand(newContentValidateCmd(opts))
	cmd.AddCommand(newContentKeysCmd(opts))
	cmd.AddCommand(newContentGetCmd(opts))
	cmd.AddCommand(newContentReferencesCmd(opts))
	cmd.AddCommand(newContentExportCmd(opts))
	return cmd
}
