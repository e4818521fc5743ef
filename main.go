// LazyIcons is a terminal UI for building skillicons.dev badges.
// It provides a lazygit-inspired interface for picking, ordering and
// copying icon markup for a README.
//
// Usage:
//
//	lazyicons                     start the UI
//	lazyicons render go rust      print markup without the UI
//	lazyicons catalog [query]     list available icon ids
//
// Configuration is loaded from ~/.lazyicons/config.yaml
package main

import (
	"fmt"
	"os"

	"github.com/marjoballabani/lazyicons/pkg/app"
	"github.com/marjoballabani/lazyicons/pkg/skillicons"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Build information, set via ldflags during compilation:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse HEAD)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	loadApp := func() (*app.App, error) {
		return app.NewApp(&app.BuildInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		}, configPath)
	}

	root := &cobra.Command{
		Use:           "lazyicons",
		Short:         "Pick skill icons and copy README markup",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadApp()
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
	root.SetVersionTemplate("lazyicons {{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ~/.lazyicons/config.yaml)")

	root.AddCommand(newRenderCmd(loadApp), newCatalogCmd(loadApp))
	return root
}

func newRenderCmd(loadApp func() (*app.App, error)) *cobra.Command {
	var (
		theme   string
		perLine int
		align   string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "render ICON...",
		Short: "Print the URL and markup for the given icons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadApp()
			if err != nil {
				return err
			}

			// Flags only override the config when given explicitly
			settings := application.Settings()
			if cmd.Flags().Changed("theme") {
				if settings.Theme, err = skillicons.ParseTheme(theme); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("perline") {
				settings.PerLine = perLine
			}
			if cmd.Flags().Changed("align") {
				if settings.Alignment, err = skillicons.ParseAlignment(align); err != nil {
					return err
				}
			}
			if err := application.SetSettings(settings); err != nil {
				return err
			}

			out, err := application.Render(args)
			if err != nil {
				return err
			}
			return printOutput(cmd, out, format)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "icon theme: dark or light")
	cmd.Flags().IntVar(&perLine, "perline", 0, "icons per row (1-20)")
	cmd.Flags().StringVar(&align, "align", "", "markup alignment: left or center")
	cmd.Flags().StringVar(&format, "format", "all", "what to print: url, badge, embed or all")
	return cmd
}

func printOutput(cmd *cobra.Command, out skillicons.Output, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "url":
		fmt.Fprintln(w, out.URL)
	case "badge":
		fmt.Fprintln(w, out.Badge)
	case "embed":
		fmt.Fprintln(w, out.Embed)
	case "all":
		fmt.Fprintf(w, "%s\n\n%s\n\n%s\n", out.URL, out.Badge, out.Embed)
	default:
		return errors.Errorf("unknown format %q (want url, badge, embed or all)", format)
	}
	return nil
}

func newCatalogCmd(loadApp func() (*app.App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [QUERY]",
		Short: "List icon ids, optionally filtered by a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := loadApp()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			for _, id := range application.SearchCatalog(query) {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
