// Package config loads and validates the board configuration: which GPIO
// header each port id maps to and the UART rates. Configs are JSON, with
// embedded per-board defaults.
package config

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Header names accepted for GPIO ports.
const (
	HeaderBoard          = "board"
	HeaderRaspberryPiHat = "rpi_hat"
	HeaderArduinoShield  = "arduino_shield"
	HeaderPmod           = "pmod"
	HeaderPmodC          = "pmod_c"
)

type Config struct {
	Board   string       `json:"board"`
	ClockHz uint32       `json:"clock_hz"`
	GPIO    []GPIOConfig `json:"gpio"`
	UART    []UARTConfig `json:"uart"`
}

type GPIOConfig struct {
	ID     string `json:"id"`
	Header string `json:"header"`
}

type UARTConfig struct {
	ID   string `json:"id"`
	Baud uint32 `json:"baud"`
}

// Load parses raw JSON and validates the result.
func Load(raw []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, errors.Wrap(err, "config: parse")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the embedded configuration for a board id.
func Default(board string) (Config, error) {
	raw, ok := embeddedConfigs[board]
	if !ok {
		return Config{}, errors.Errorf("config: no embedded config for board %q", board)
	}
	return Load(raw)
}

// Validate checks ids, header names and rates.
func (c Config) Validate() error {
	if c.ClockHz == 0 {
		return errors.New("config: clock_hz must be set")
	}
	seen := map[string]bool{}
	for _, g := range c.GPIO {
		if g.ID == "" {
			return errors.New("config: gpio entry with empty id")
		}
		if seen[g.ID] {
			return errors.Errorf("config: duplicate device id %q", g.ID)
		}
		seen[g.ID] = true
		switch g.Header {
		case HeaderBoard, HeaderRaspberryPiHat, HeaderArduinoShield, HeaderPmod, HeaderPmodC:
		default:
			return errors.Errorf("config: unknown gpio header %q for %q", g.Header, g.ID)
		}
	}
	for _, u := range c.UART {
		if u.ID == "" {
			return errors.New("config: uart entry with empty id")
		}
		if seen[u.ID] {
			return errors.Errorf("config: duplicate device id %q", u.ID)
		}
		seen[u.ID] = true
		if u.Baud == 0 {
			return errors.Errorf("config: uart %q without a baud rate", u.ID)
		}
	}
	return nil
}
