package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/starfetch/boot"
	"github.com/lixenwraith/starfetch/chime"
	"github.com/lixenwraith/starfetch/config"
	"github.com/lixenwraith/starfetch/display"
	"github.com/lixenwraith/starfetch/graphics"
	"github.com/lixenwraith/starfetch/logging"
	"github.com/lixenwraith/starfetch/scene"
	"github.com/lixenwraith/starfetch/sysinfo"
	"github.com/lixenwraith/starfetch/terminal"
)

// parseColorMode resolves the --color-mode flag; auto and unknown values detect
func parseColorMode(s string) (terminal.ColorMode, bool) {
	switch s {
	case "256":
		return terminal.ColorMode256, true
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrueColor, true
	default:
		return terminal.DetectColorMode(), false
	}
}

// execJSON prints the snapshot; config is not consulted
func (a *app) execJSON(info sysinfo.Snapshot) error {
	data, err := info.JSON()
	if err != nil {
		return fmt.Errorf("encode system info: %w", err)
	}
	data = append(data, '\n')
	_, err = a.stdout.Write(data)
	return err
}

func (a *app) execPanel(cfg *config.Config) error {
	mode, _ := parseColorMode(a.root.colorMode)
	return display.Render(a.stdout, sysinfo.Collect(), panelOptions(cfg), mode)
}

// panelOptions maps config onto the static panel
func panelOptions(cfg *config.Config) display.Options {
	theme := display.ThemeByName(cfg.Color)
	theme.Title = config.MustColor(cfg.Colors.Title, theme.Title)
	theme.Label = config.MustColor(cfg.Colors.Label, theme.Label)
	theme.Separator = config.MustColor(cfg.Colors.Separator, theme.Separator)

	return display.Options{
		Theme:     theme,
		Fields:    cfg.ActiveFields(),
		Label:     cfg.LabelFor,
		Separator: cfg.SeparatorChar(),
		Palette:   cfg.ShowPalette(),
	}
}

func (a *app) execSplash(ctx context.Context, cfg *config.Config) error {
	logger := logging.NewOrNop(logging.Config{
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		Development: cfg.Log.Development,
	})
	defer logger.Sync()

	opts := a.splashOptions(cfg, sysinfo.Collect(), logger)

	if cfg.Splash.Chime {
		player := chime.NewPlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable, chime disabled", zap.Error(err))
		} else {
			opts.Chime = player
			defer func() {
				player.Wait(chime.Duration)
				player.Close()
			}()
		}
	}

	if err := boot.Run(ctx, opts); err != nil {
		// Splash failures are logged only; the exit status stays 0
		logger.Error("splash failed", zap.Error(err))
	}
	return nil
}

// splashOptions maps config onto the boot entry contract
// Interactivity follows the controlling terminal, so a redirected stdout still animates on the tty
func (a *app) splashOptions(cfg *config.Config, info sysinfo.Snapshot, logger *zap.Logger) boot.Options {
	sc := cfg.Splash

	align, _ := boot.ParseAlign(sc.Align)
	stretch, _ := graphics.ParseStretch(sc.Stretch)
	mode, proto := graphics.DetectMode(graphics.Request{
		Override:    sc.RenderMode,
		Capture:     sc.Capture,
		Interactive: a.ttyAvailable(),
		Getenv:      a.getenv,
	})

	defaults := scene.DefaultColors()
	opts := boot.Options{
		Info:           info,
		Align:          align,
		Mode:           mode,
		Protocol:       proto,
		Stretch:        stretch,
		Transparency:   sc.Transparency,
		StarBrightness: sc.StarBrightness,
		Width:          sc.Width,
		Height:         sc.Height,
		MinWidth:       sc.MinWidth,
		MinHeight:      sc.MinHeight,
		MaxWidth:       sc.MaxWidth,
		MaxHeight:      sc.MaxHeight,
		Timeout:        time.Duration(sc.Timeout) * time.Second,
		Entrance:       sc.Entrance,
		Exit:           sc.Exit,
		Capture:        sc.Capture,
		Seed:           a.splash.seed,
		Colors: scene.Colors{
			Border: config.MustColor(sc.Colors.Border, defaults.Border),
			Status: config.MustColor(sc.Colors.Status, defaults.Status),
			Footer: config.MustColor(sc.Colors.Footer, defaults.Footer),
		},
		Logger: logger,
	}
	if cm, ok := parseColorMode(a.root.colorMode); ok {
		opts.ColorMode = &cm
	}

	if sc.Image != "" {
		opts.ImagePath = config.ExpandHome(sc.Image, a.getenv("HOME"))
		img, err := graphics.Load(opts.ImagePath)
		if err != nil {
			fmt.Fprintf(a.stderr, "warning: %v\n", err)
			logger.Warn("background image skipped", zap.String("path", opts.ImagePath), zap.Error(err))
		} else {
			opts.Image = img
		}
	}

	logger.Info("splash configured",
		zap.Stringer("mode", opts.Mode),
		zap.Stringer("protocol", opts.Protocol),
		zap.Stringer("align", opts.Align),
		zap.String("entrance", opts.Entrance),
		zap.String("exit", opts.Exit),
		zap.Bool("capture", opts.Capture))
	return opts
}
