package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/design-estimate/pkg/config"
	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/logging"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
	"gitlab.com/tinyland/lab/design-estimate/pkg/quote"
	"gitlab.com/tinyland/lab/design-estimate/pkg/theme"
	"gitlab.com/tinyland/lab/design-estimate/pkg/tui"
)

// cli holds persistent flag values and the state built from them before any
// command runs.
type cli struct {
	configPath string
	themeName  string
	noColor    bool
	verbose    bool

	cfg   *config.Config
	log   *zap.Logger
	money *currency.Formatter
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "estimate",
		Short: "Interactive project cost estimator",
		Long: "Pick a design service, add-on services and a timeline to see the estimated\n" +
			"project cost. Without a terminal on stdout, prints a quote instead.",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
		RunE:               c.runRoot,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to configuration file")
	root.PersistentFlags().StringVar(&c.themeName, "theme", "", "color theme (overrides display.theme)")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colors")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.quoteCmd(), c.servicesCmd(), c.themesCmd(), c.configCmd(), versionCmd())
	return root
}

// setup loads configuration and builds the theme, logger and currency
// formatter shared by every command.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFromFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Display.ThemeFile != "" {
		name, err := theme.LoadFile(cfg.Display.ThemeFile)
		if err != nil {
			return fmt.Errorf("load theme file: %w", err)
		}
		cfg.Display.Theme = name
	}
	if c.themeName != "" {
		cfg.Display.Theme = c.themeName
	}
	if !theme.Has(cfg.Display.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Display.Theme, strings.Join(theme.Names(), ", "))
	}
	theme.SetCurrent(cfg.Display.Theme)

	if c.noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	money, err := currency.New(cfg.Display.Locale, cfg.Display.Currency)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.General.LogLevel,
		File:    cfg.General.LogFile,
		Verbose: c.verbose,
	})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("theme", cfg.Display.Theme),
		zap.String("locale", money.Locale()),
		zap.String("currency", money.Code()),
	)

	c.cfg, c.log, c.money = cfg, log, money
	return nil
}

func (c *cli) teardown(_ *cobra.Command, _ []string) error {
	if c.log != nil {
		// Sync on a file logger only fails for closed descriptors.
		_ = c.log.Sync()
	}
	return nil
}

// runRoot launches the TUI, or prints a text quote when stdout is not a
// terminal.
func (c *cli) runRoot(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !interactive(out) {
		c.log.Debug("stdout is not a terminal, printing quote")
		if c.cfg.Defaults.Service == "" {
			return quote.RenderCatalog(out, c.money, quote.FormatText)
		}
		e, err := quote.Build(quote.Request{Service: c.cfg.Defaults.Service})
		if err != nil {
			return err
		}
		return quote.Render(out, quote.NewSnapshot(e, c.money), quote.FormatText)
	}

	e := pricing.NewEngine()
	if id := c.cfg.Defaults.Service; id != "" {
		e.SelectService(pricing.ServiceID(strings.ToLower(id)))
	}
	return tui.Run(cmd.Context(), tui.Options{
		Engine:         e,
		Money:          c.money,
		Logger:         c.log,
		Theme:          theme.Current,
		AddonsExpanded: c.cfg.Display.AddonsExpanded,
		ShowHelp:       c.cfg.Display.ShowHelp,
		Mouse:          c.cfg.Display.Mouse,
	})
}

func (c *cli) quoteCmd() *cobra.Command {
	var (
		req    quote.Request
		format string
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print an estimate for a service, add-ons and timeline",
		Example: "  estimate quote --service industrial --addon Surfacing --addon \"CAD Modeling\" --weeks 20\n" +
			"  estimate quote -s brand -f json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := quote.ParseFormat(format)
			if err != nil {
				return err
			}
			if req.Service == "" {
				req.Service = c.cfg.Defaults.Service
			}
			if req.Service == "" {
				return fmt.Errorf("--service is required (see 'estimate services')")
			}
			e, err := quote.Build(req)
			if err != nil {
				return err
			}
			snap := quote.NewSnapshot(e, c.money)
			c.log.Debug("quote built",
				zap.String("service", string(snap.Service)),
				zap.Strings("addons", snap.Addons),
				zap.Int("timeline_weeks", snap.TimelineWeeks),
				zap.Int64("total", snap.Breakdown.Total),
			)
			return quote.Render(cmd.OutOrStdout(), snap, f)
		},
	}
	cmd.Flags().StringVarP(&req.Service, "service", "s", "", "service id (default: defaults.service)")
	cmd.Flags().StringArrayVarP(&req.Addons, "addon", "a", nil, "add-on name, repeatable")
	cmd.Flags().IntVarP(&req.Weeks, "weeks", "w", 0, "timeline in weeks (default: standard)")
	cmd.Flags().StringVarP(&format, "format", "f", string(quote.FormatText), "output format: text, json or yaml")
	return cmd
}

func (c *cli) servicesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "services",
		Short: "List services and their add-ons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := quote.ParseFormat(format)
			if err != nil {
				return err
			}
			return quote.RenderCatalog(cmd.OutOrStdout(), c.money, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(quote.FormatText), "output format: text, json or yaml")
	return cmd
}

func (c *cli) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.Names() {
				marker := "  "
				if strings.EqualFold(name, theme.Current.Name) {
					marker = "* "
				}
				if _, err := fmt.Fprintln(out, marker+name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *cli) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.cfg.Encode(cmd.OutOrStdout())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "estimate %s (%s) built %s\n", version, commit, date)
			return err
		},
	}
}

// interactive reports whether w is a terminal.
func interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
