package content

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// LoadConfig decodes a Config from r. Grounded on the teacher's
// internal/game/config.go loaders, but takes an io.Reader instead of
// opening a hardcoded relative path, so callers (tests, cmd/ante, a future
// mod loader) control where the bytes come from.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("content: parse config: %w", err)
	}
	return cfg, nil
}

// LoadContent decodes a Content from r without compiling its effect
// expressions - callers that want load-time validation should follow with
// CompileContent.
func LoadContent(r io.Reader) (*Content, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: read content: %w", err)
	}
	c := &Content{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("content: parse content: %w", err)
	}
	return c, nil
}
