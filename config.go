package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StartPosition is the standard opening: empty board, player 1 to move,
// workers on B3/D3 and C2/C4.
const StartPosition = "0000000000000000000000000/1/B3,D3/C2,C4"

type config struct {
	// Engine is the argv of the engine process.
	Engine []string `yaml:"engine"`
	// Position is the seed position string.
	Position string `yaml:"position"`
	// Debug raises the log level to include engine diagnostics.
	Debug bool `yaml:"debug"`
}

func defaultConfig() config {
	return config{
		Engine:   []string{"./engine"},
		Position: StartPosition,
	}
}

// loadConfig reads a YAML config file over the defaults. An empty path keeps
// the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Engine) == 0 {
		return cfg, fmt.Errorf("config %s: engine command is empty", path)
	}
	return cfg, nil
}
