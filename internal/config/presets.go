package config

// Presets are named throw setups covering the interesting regimes: a clean
// multi-skip, a steep plunge that sinks immediately, and edge cases used
// while tuning the force model.
var Presets = map[string]func() *Config{
	"classic": func() *Config {
		cfg := DefaultConfig()
		cfg.Throw = ThrowConfig{Height: 0.3, Speed: 8, Angle: -15, Pitch: 0.2}
		return cfg
	},
	"flat": func() *Config {
		cfg := DefaultConfig()
		cfg.Throw = ThrowConfig{Height: 0.1, Speed: 10, Angle: -5, Pitch: 0.15}
		cfg.Duration = 30
		return cfg
	},
	"plunge": func() *Config {
		cfg := DefaultConfig()
		cfg.Throw = ThrowConfig{Height: 1.0, Speed: 6, Angle: -60, Pitch: 0.8}
		cfg.Duration = 5
		return cfg
	},
	"pebble": func() *Config {
		cfg := DefaultConfig()
		cfg.Stone = StoneConfig{Shape: "disc", Width: 0.04, Thickness: 0.008, Density: 2700}
		cfg.Throw = ThrowConfig{Height: 0.2, Speed: 9, Angle: -12, Pitch: 0.2}
		return cfg
	},
	"slab": func() *Config {
		cfg := DefaultConfig()
		cfg.Stone = StoneConfig{Shape: "rect", Width: 0.1, Height: 0.02, Thickness: 0.01, Density: 2700}
		cfg.Throw = ThrowConfig{Height: 0.05, Speed: 5.8, Angle: -30, Pitch: 0.35}
		cfg.Duration = 40
		return cfg
	},
}

func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
