package config

// Generate returns the commented default configuration file
// Loading it yields Default()
func Generate() string {
	return `# starfetch configuration
# Place this file at ~/.config/starfetch/config.toml

# Color theme: green, cyan, red, magenta, yellow, blue, mono
color = "green"

# Display mode: default (static panel) or splash (boot animation)
mode = "default"

# Separator character under the title
separator = "-"

# Show color palette at bottom
# palette = true

# Fields to display, in order. Remove entries to hide them
# fields = ["OS", "Host", "Kernel", "Uptime", "Shell", "Terminal", "CPU", "Memory"]

# Custom field labels
# [labels]
# "Terminal" = "Term"

# Panel colors override the theme: tcell names, "#rrggbb" or "palette:N"
# [colors]
# title = "cyan"
# label = "#64c8ff"
# separator = "darkgray"

[splash]
align = "left"             # left | center | right
# width = 68
# height = 23
min_width = 10
min_height = 7
# max_width = 120
# max_height = 40
render_mode = "auto"       # auto | image | ascii | inline
# image = "~/Pictures/bg.png"
stretch = "fill"           # fill | fit | crop
transparency = 0           # luminance at or below which image pixels are transparent
# star_brightness = 200    # luminance at or above which image pixels twinkle
timeout = 120              # seconds
entrance = "slow"          # slow | fast | instant
exit = "slow"
chime = false
capture = false

[splash.colors]
border = "#646478"
status = "#8c8c8c"
footer = "#8c8c8c"

[log]
level = "info"
# file = "/tmp/starfetch.log"
development = false
`
}
