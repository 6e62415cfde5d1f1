package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/starfetch/config"
	"github.com/lixenwraith/starfetch/sysinfo"
	"github.com/lixenwraith/starfetch/terminal"
	"github.com/lixenwraith/starfetch/timeline"
)

// rootFlags apply to every command
type rootFlags struct {
	configPath string
	color      string
	colorMode  string
	mode       string
	splash     bool
	boot       bool
	json       bool
}

// splashFlags override the [splash] section
type splashFlags struct {
	left, center, right bool
	renderMode          string
	image               string
	entrance            string
	exit                string
	timeout             int
	capture             bool
	chime               bool
	seed                uint64
}

type app struct {
	stdout, stderr io.Writer
	getenv         func(string) string
	ttyAvailable   func() bool

	root   rootFlags
	splash splashFlags
}

func newApp(stdout, stderr io.Writer, getenv func(string) string) *app {
	return &app{stdout: stdout, stderr: stderr, getenv: getenv, ttyAvailable: terminal.Available}
}

func (a *app) registerRoot(fs *flag.FlagSet) {
	fs.StringVar(&a.root.configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/starfetch/config.toml)")
	fs.StringVar(&a.root.color, "color", "", "color theme: green, cyan, red, magenta, yellow, blue, mono")
	fs.StringVar(&a.root.colorMode, "color-mode", "auto", "terminal color mode: auto, truecolor, 256")
	fs.StringVar(&a.root.mode, "mode", "", "display mode: default, splash")
	fs.BoolVar(&a.root.splash, "splash", false, "shorthand for --mode splash")
	fs.BoolVar(&a.root.boot, "boot", false, "alias for --splash")
}

func (a *app) registerSplash(fs *flag.FlagSet) {
	fs.BoolVar(&a.splash.left, "left", false, "align the splash to the left edge")
	fs.BoolVar(&a.splash.center, "center", false, "center the splash")
	fs.BoolVar(&a.splash.right, "right", false, "align the splash to the right edge")
	fs.StringVar(&a.splash.renderMode, "render-mode", "", "background rendering: auto, image, ascii, inline")
	fs.StringVar(&a.splash.image, "image", "", "background image path")
	fs.StringVar(&a.splash.entrance, "entrance", "", "entrance speed: "+strings.Join(timeline.Presets(), ", "))
	fs.StringVar(&a.splash.exit, "exit", "", "exit speed: "+strings.Join(timeline.Presets(), ", "))
	fs.IntVar(&a.splash.timeout, "timeout", 0, "seconds before the splash exits on its own")
	fs.BoolVar(&a.splash.capture, "capture", false, "render for a recording harness: stdout only, exits automatically")
	fs.BoolVar(&a.splash.chime, "chime", false, "play a tone when the splash exits")
	fs.Uint64Var(&a.splash.seed, "seed", 0, "starfield seed (0 picks one per run)")
}

func (a *app) cli() *ffcli.Command {
	splashFS := flag.NewFlagSet("starfetch splash", flag.ContinueOnError)
	a.registerRoot(splashFS)
	a.registerSplash(splashFS)

	splashCmd := &ffcli.Command{
		Name:       "splash",
		ShortUsage: "starfetch splash [flags]",
		ShortHelp:  "Play the animated boot splash",
		FlagSet:    splashFS,
		Exec: func(ctx context.Context, _ []string) error {
			cfg := a.loadConfig()
			cfg.Mode = config.ModeSplash
			return a.execSplash(ctx, cfg)
		},
	}

	configCmd := &ffcli.Command{
		Name:       "config",
		ShortUsage: "starfetch config",
		ShortHelp:  "Print the default configuration file",
		Exec: func(context.Context, []string) error {
			_, err := io.WriteString(a.stdout, config.Generate())
			return err
		},
	}

	rootFS := flag.NewFlagSet("starfetch", flag.ContinueOnError)
	a.registerRoot(rootFS)
	rootFS.BoolVar(&a.root.json, "json", false, "print system information as JSON and exit")

	return &ffcli.Command{
		Name:        "starfetch",
		ShortUsage:  "starfetch [flags] [<subcommand>]",
		ShortHelp:   "Show system information, or a boot splash",
		FlagSet:     rootFS,
		Subcommands: []*ffcli.Command{splashCmd, configCmd},
		Exec: func(ctx context.Context, _ []string) error {
			if a.root.json {
				return a.execJSON(sysinfo.Collect())
			}
			cfg := a.loadConfig()
			if cfg.Mode == config.ModeSplash {
				return a.execSplash(ctx, cfg)
			}
			return a.execPanel(cfg)
		},
	}
}

// loadConfig reads file and environment, then applies flags; a bad file is reported and ignored
func (a *app) loadConfig() *config.Config {
	cfg, err := config.Load(a.root.configPath)
	if err != nil {
		fmt.Fprintf(a.stderr, "warning: %v\n", err)
	}
	applyFlags(cfg, a.root, a.splash)
	return cfg
}

// applyFlags overlays explicitly set flags; they take precedence over file and environment
func applyFlags(cfg *config.Config, root rootFlags, sf splashFlags) {
	if root.color != "" {
		cfg.Color = root.color
	}
	if root.mode != "" {
		cfg.Mode = strings.ToLower(root.mode)
	}
	if root.splash || root.boot {
		cfg.Mode = config.ModeSplash
	}

	switch {
	case sf.center:
		cfg.Splash.Align = "center"
	case sf.left:
		cfg.Splash.Align = "left"
	case sf.right:
		cfg.Splash.Align = "right"
	}
	if sf.renderMode != "" {
		cfg.Splash.RenderMode = sf.renderMode
	}
	if sf.image != "" {
		cfg.Splash.Image = sf.image
	}
	if sf.entrance != "" {
		cfg.Splash.Entrance = sf.entrance
	}
	if sf.exit != "" {
		cfg.Splash.Exit = sf.exit
	}
	if sf.timeout > 0 {
		cfg.Splash.Timeout = sf.timeout
	}
	if sf.capture {
		cfg.Splash.Capture = true
	}
	if sf.chime {
		cfg.Splash.Chime = true
	}
}
