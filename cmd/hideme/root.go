package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/1broseidon/hideme/internal/background"
	"github.com/1broseidon/hideme/internal/config"
	"github.com/1broseidon/hideme/internal/fault"
	"github.com/1broseidon/hideme/internal/logging"
	"github.com/1broseidon/hideme/internal/overlay"
	"github.com/1broseidon/hideme/internal/wallpaper"
)

type rootOptions struct {
	color      string
	logLevel   string
	background bool
	configPath string
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootOptions{})
}

func buildRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hideme",
		Short: "A small utility to hide portions of your screen",
		Long: `A small utility to hide portions of your screen.

hideme opens a borderless, always-on-top window filled with a solid color.
Drag inside the window to move it, drag near its edges to resize it and
press Escape to close it.

With --background the window shows the part of the desktop wallpaper that
lies behind it, so it blends in with the desktop. Combine it with --color
to get a tinted background.

Settings are read from ~/.config/hideme/config.yaml when it exists;
command-line flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := prepare(cmd, opts)
			if err != nil {
				return err
			}
			return launch(cmd, l)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.color, "color", "c", config.DefaultColor, "the color of the window as `r,g,b,a`")
	f.StringVarP(&opts.logLevel, "loglevel", "v", config.DefaultLogLevel, "log level from 0 (errors only) to 3 (debug)")
	f.BoolVarP(&opts.background, "background", "b", false, "show the desktop wallpaper behind the window (tinted by --color)")
	f.StringVar(&opts.configPath, "config", "", "path to the config file")

	return cmd
}

// settings is everything resolved before the window opens.
type settings struct {
	cfg   *config.Config
	color config.Color
	log   zerolog.Logger
}

// prepare loads the config file, applies flags on top of it and builds the
// logger.
func prepare(cmd *cobra.Command, opts *rootOptions) (*settings, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, cfg)

	level, ok := logging.ParseVerbosity(cfg.LogLevel)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), logging.RangeWarning)
	}
	log, err := logging.New(logging.Config{Level: level, Out: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fault.Fatal("couldn't initialize logger", err)
	}

	color, err := config.ParseColor(cfg.Color)
	if err != nil {
		log.Warn().Err(err).Msg("something went wrong while parsing the color arguments")
	}

	log.Debug().
		Str("color", cfg.Color).
		Bool("background", cfg.Background).
		Int("edge_padding", cfg.EdgePadding).
		Msg("settings resolved")

	return &settings{cfg: cfg, color: color, log: log}, nil
}

func launch(cmd *cobra.Command, s *settings) error {
	bg, err := background.Load(cmd.Context(), background.Options{
		Enabled: s.cfg.Background,
		Image:   s.cfg.BackgroundImage,
		Finder:  wallpaper.NewFinder(),
	}, s.log)
	if err != nil {
		return fault.Fatal("load background", err)
	}

	return overlay.Run(cmd.Context(), overlay.Options{
		Title:               s.cfg.Title,
		Width:               s.cfg.Width,
		Height:              s.cfg.Height,
		EdgePadding:         s.cfg.EdgePadding,
		Clear:               s.color,
		Background:          bg,
		DrawBackground:      s.cfg.Background,
		ReconfigureOnResize: s.cfg.ReconfigureOnResize,
	}, s.log)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("color") {
		cfg.Color = opts.color
	}
	if f.Changed("loglevel") {
		cfg.LogLevel = opts.logLevel
	}
	if f.Changed("background") {
		cfg.Background = opts.background
	}
}
