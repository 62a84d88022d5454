package config

// Theme holds color settings as hex strings; empty means the
// terminal's default color.
type Theme struct {
	Foreground  string
	Background  string
	Gutter      string
	Border      string
	Placeholder string
}

// Config is the full pane configuration.
type Config struct {
	Theme       Theme
	LineNumbers bool
	TabWidth    int
	Border      string // "none", "single", "rounded", "double"
	Title       string
	Placeholder string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LineNumbers: true,
		TabWidth:    4,
		Border:      "single",
		Placeholder: "empty",
	}
}

// FromMap applies a loaded settings map on top of the defaults.
// Unknown keys are ignored; missing keys keep their default.
func FromMap(m map[string]any) Config {
	cfg := Default()
	if m == nil {
		return cfg
	}

	getBool(m, "line_numbers", &cfg.LineNumbers)
	getInt(m, "tab_width", &cfg.TabWidth)
	getString(m, "border", &cfg.Border)
	getString(m, "title", &cfg.Title)
	getString(m, "placeholder", &cfg.Placeholder)
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 1
	}

	if theme, ok := m["theme"].(map[string]any); ok {
		getString(theme, "foreground", &cfg.Theme.Foreground)
		getString(theme, "background", &cfg.Theme.Background)
		getString(theme, "gutter", &cfg.Theme.Gutter)
		getString(theme, "border", &cfg.Theme.Border)
		getString(theme, "placeholder", &cfg.Theme.Placeholder)
	}
	return cfg
}

func getString(m map[string]any, key string, dst *string) {
	if v, ok := m[key].(string); ok {
		*dst = v
	}
}

func getBool(m map[string]any, key string, dst *bool) {
	if v, ok := m[key].(bool); ok {
		*dst = v
	}
}

func getInt(m map[string]any, key string, dst *int) {
	switch v := m[key].(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case float64:
		*dst = int(v)
	}
}
