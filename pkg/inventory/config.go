package inventory

import (
	"fmt"
)

// Config selects and parameterizes the inventory providers.
type Config struct {
	// Providers is the ranked list of provider names to try at startup.
	// The first one that constructs successfully becomes the source.
	Providers  []string `json:"providers,omitempty"`
	EEPROMPath string   `json:"eeprom_path,omitempty"`
	DMIPath    string   `json:"dmi_path,omitempty"`
}

const (
	defaultEEPROMPath = "/sys/bus/i2c/devices/0-0050/eeprom"
	defaultDMIPath    = "/sys/class/dmi/id"
)

func (c *Config) Validate() error {
	if len(c.Providers) == 0 {
		c.Providers = []string{"eeprom", "dmi", "host"}
	}

	for _, name := range c.Providers {
		if _, ok := factories[name]; !ok {
			return fmt.Errorf("%w: %q", errUnknownProvider, name)
		}
	}

	if c.EEPROMPath == "" {
		c.EEPROMPath = defaultEEPROMPath
	}

	if c.DMIPath == "" {
		c.DMIPath = defaultDMIPath
	}

	return nil
}
