package main

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"paint/internal/canvas"
)

type Config struct {
	SaveDirectory string
	Width         int
	Height        int
	LineWidth     float64
	FontSize      float64
	LineColor     color.Color
	FillColor     color.Color
	LogFile       string
}

func defaultConfig() *Config {
	d := canvas.DefaultConfig()
	return &Config{
		Width:     canvas.DefaultWidth,
		Height:    canvas.DefaultHeight,
		LineWidth: d.LineWidth,
		FontSize:  d.FontSize,
		LineColor: d.LineColor,
		FillColor: d.FillColor,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".paintrc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

// parseConfig reads key=value lines. Unknown keys and bad values are skipped.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Width = n
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Height = n
			}
		case "linewidth", "line_width":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f >= minLineWidth && f <= maxLineWidth {
				config.LineWidth = f
			}
		case "fontsize", "font_size":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f >= minFontSize && f <= maxFontSize {
				config.FontSize = f
			}
		case "linecolor", "line_color":
			if c, ok := parseColor(value); ok {
				config.LineColor = c
			}
		case "fillcolor", "fill_color":
			if c, ok := parseColor(value); ok {
				config.FillColor = c
			}
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// parseColor accepts "#rrggbb", a palette name, or "none".
func parseColor(value string) (color.Color, bool) {
	value = strings.ToLower(value)
	if value == "none" || value == "transparent" {
		return color.Transparent, true
	}
	for _, s := range palette {
		if s.name == value {
			return s.color, true
		}
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return nil, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

func (c *Config) canvasConfig() canvas.Config {
	cfg := canvas.DefaultConfig()
	cfg.LineWidth = c.LineWidth
	cfg.FontSize = c.FontSize
	cfg.LineColor = c.LineColor
	cfg.FillColor = c.FillColor
	return cfg
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
