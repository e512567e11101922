package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"triz/standards/internal/config"
	"triz/standards/internal/container"
	"triz/standards/internal/menu"
)

var ErrNotFound = errors.New("not found")

// NewRootCommand builds the triz command tree. Without a subcommand it browses interactively.
func NewRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "triz",
		Short:         "Look up inventive standards by problem category",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./config.yaml)")
	flags.String("details", "", "detail store file (.json, .jsonc or .html)")
	flags.String("details-format", "", "detail store format: auto, json or html")
	flags.Bool("require-details", false, "fail when the detail store cannot be loaded")
	flags.String("catalog", "", "catalog YAML file (default built-in)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		&cobra.Command{
			Use:   "browse",
			Short: "Choose a category and subcategory from numbered menus",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runBrowse(cmd, configFile)
			},
		},
		&cobra.Command{
			Use:   "categories",
			Short: "List the catalog categories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := setup(cmd, configFile)
				if err != nil {
					return err
				}
				app.Service.EnumerateChoices(cmd.OutOrStdout(), app.Service.Categories())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <category|number>",
			Short: "Print a category with groups and classes expanded",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := setup(cmd, configFile)
				if err != nil {
					return err
				}

				name := categoryName(app, args[0])
				printer := menu.NewPrinter(cmd.OutOrStdout())
				listing := app.Service.FlattenCategory(name)
				if listing.Len() == 0 {
					printer.Line("No results found for the given category.")
					return nil
				}
				printer.Listing(name, listing)
				return nil
			},
		},
		&cobra.Command{
			Use:   "lookup <code>",
			Short: "Print the detail record stored for a code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := setup(cmd, configFile)
				if err != nil {
					return err
				}

				record, ok := app.Service.ResolveDetail(args[0])
				if !ok {
					return fmt.Errorf("standard %s %w", args[0], ErrNotFound)
				}
				menu.NewPrinter(cmd.OutOrStdout()).Record(record)
				return nil
			},
		},
		&cobra.Command{
			Use:   "expand <prefix>",
			Short: "Print every standard whose code starts with prefix",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := setup(cmd, configFile)
				if err != nil {
					return err
				}

				printer := menu.NewPrinter(cmd.OutOrStdout())
				codes := app.Service.ExpandByPrefix(args[0])
				if codes.Len() == 0 {
					printer.Line(fmt.Sprintf("No standards found for prefix %s.", args[0]))
					return nil
				}
				printer.Codes(fmt.Sprintf("Standards starting with %s:", args[0]), codes)
				return nil
			},
		},
	)

	return root
}

func runBrowse(cmd *cobra.Command, configFile string) error {
	app, err := setup(cmd, configFile)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

func setup(cmd *cobra.Command, configFile string) (*container.Container, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Log.Apply(); err != nil {
		return nil, err
	}

	app, err := container.New(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	return app, nil
}

// categoryName accepts a category name or its 1-based menu number.
func categoryName(app *container.Container, arg string) string {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg
	}
	names := app.Service.Categories()
	if n < 1 || n > len(names) {
		return arg
	}
	return names[n-1]
}
