package config

import (
	"fmt"

	"github.com/kilianp07/evtrip/pkg/export"
)

// OutputConfig selects how the sweep is exported.
type OutputConfig struct {
	// Format is one of json, csv or html.
	Format string `json:"format"`
	// Path of the output file. "-" writes to stdout.
	Path string `json:"path"`
}

// SetDefaults renders an HTML chart to plot.html.
func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = string(export.FormatHTML)
	}
	if c.Path == "" {
		c.Path = "plot." + c.Format
	}
}

// Validate checks the output format.
func (c OutputConfig) Validate() error {
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// ServerConfig configures the HTTP surface of the serve command.
type ServerConfig struct {
	Address string `json:"address"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}
