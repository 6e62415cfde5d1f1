package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfetch/boot"
	"github.com/lixenwraith/starfetch/sysinfo"
	"github.com/lixenwraith/starfetch/terminal"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultMinimumsMatchBoxFloor(t *testing.T) {
	cfg := Default()
	assert.Equal(t, boot.MinBoxWidth, cfg.Splash.MinWidth)
	assert.Equal(t, boot.MinBoxHeight, cfg.Splash.MinHeight)
	require.NoError(t, cfg.Validate())
}

func TestGenerateRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t, Generate()))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
color = "cyan"
fields = ["Kernel", "OS"]
palette = false

[labels]
Kernel = "Linux"

[splash]
align = "center"
width = 80
entrance = "fast"
star_brightness = 200
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cyan", cfg.Color)
	assert.Equal(t, []string{"Kernel", "OS"}, cfg.ActiveFields())
	assert.False(t, cfg.ShowPalette())
	assert.Equal(t, "Linux", cfg.LabelFor("Kernel"))
	assert.Equal(t, "OS", cfg.LabelFor("OS"))
	assert.Equal(t, "center", cfg.Splash.Align)
	require.NotNil(t, cfg.Splash.Width)
	assert.Equal(t, 80, *cfg.Splash.Width)
	assert.Nil(t, cfg.Splash.Height)
	require.NotNil(t, cfg.Splash.StarBrightness)
	assert.Equal(t, uint8(200), *cfg.Splash.StarBrightness)
	assert.Equal(t, "fast", cfg.Splash.Entrance)
	// untouched keys keep defaults
	assert.Equal(t, "slow", cfg.Splash.Exit)
	assert.Equal(t, 120, cfg.Splash.Timeout)
	assert.Equal(t, "#646478", cfg.Splash.Colors.Border)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[splash]
entrance = "fast"
timeout = 30
`)
	t.Setenv("STARFETCH_ENTRANCE", "instant")
	t.Setenv("STARFETCH_CAPTURE", "true")
	t.Setenv("STARFETCH_LOG_FILE", "/tmp/sf.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "instant", cfg.Splash.Entrance)
	assert.Equal(t, 30, cfg.Splash.Timeout)
	assert.True(t, cfg.Splash.Capture)
	assert.Equal(t, "/tmp/sf.log", cfg.Log.File)
}

func TestLoadMalformedFallsBack(t *testing.T) {
	path := writeConfig(t, "color = \n[splash")
	t.Setenv("STARFETCH_COLOR", "red")

	cfg, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
	require.NotNil(t, cfg)
	assert.Equal(t, "red", cfg.Color)
	assert.Equal(t, "slow", cfg.Splash.Entrance)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"splash mode", func(c *Config) { c.Mode = "splash" }, false},
		{"bad mode", func(c *Config) { c.Mode = "neon" }, true},
		{"bad align", func(c *Config) { c.Splash.Align = "middle" }, true},
		{"bad render mode", func(c *Config) { c.Splash.RenderMode = "sixel" }, true},
		{"bad stretch", func(c *Config) { c.Splash.Stretch = "tile" }, true},
		{"negative timeout", func(c *Config) { c.Splash.Timeout = -1 }, true},
		{"bad color", func(c *Config) { c.Splash.Colors.Border = "notacolor" }, true},
		{"unknown preset is allowed", func(c *Config) { c.Splash.Entrance = "glacial" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected terminal.RGB
		wantErr  bool
	}{
		{"#646478", terminal.RGB{R: 100, G: 100, B: 120}, false},
		{"#FFFFFF", terminal.RGB{R: 255, G: 255, B: 255}, false},
		{"red", terminal.RGB{R: 255, G: 0, B: 0}, false},
		{"Dark_Gray", terminal.RGB{R: 169, G: 169, B: 169}, false},
		{"palette:16", terminal.RGB{R: 0, G: 0, B: 0}, false},
		{"palette:300", terminal.RGB{}, true},
		{"", terminal.RGB{}, true},
		{"chartreuse-ish", terminal.RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustColor(t *testing.T) {
	fallback := terminal.RGB{R: 1, G: 2, B: 3}
	assert.Equal(t, fallback, MustColor("", fallback))
	assert.Equal(t, fallback, MustColor("nope", fallback))
	assert.Equal(t, terminal.RGB{R: 140, G: 140, B: 140}, MustColor("#8c8c8c", fallback))
}

func TestDefaultPath(t *testing.T) {
	env := map[string]string{"HOME": "/home/ada"}
	getenv := func(k string) string { return env[k] }
	assert.Equal(t, "/home/ada/.config/starfetch/config.toml", DefaultPath(getenv))

	env["XDG_CONFIG_HOME"] = "/xdg"
	assert.Equal(t, "/xdg/starfetch/config.toml", DefaultPath(getenv))
}

func TestAccessorsDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, sysinfo.DefaultFields, c.ActiveFields())
	assert.True(t, c.ShowPalette())
	assert.Equal(t, "-", c.SeparatorChar())
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/ada/bg.png", ExpandHome("~/bg.png", "/home/ada"))
	assert.Equal(t, "/home/ada", ExpandHome("~", "/home/ada"))
	assert.Equal(t, "/srv/bg.png", ExpandHome("/srv/bg.png", "/home/ada"))
	assert.Equal(t, "~/bg.png", ExpandHome("~/bg.png", ""))
}
