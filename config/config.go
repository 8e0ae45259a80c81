// Package config holds the game settings. Values come from built in defaults,
// an optional YAML file and MAMBA_* environment variables, in that order.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Colors are the named colors for each drawn element.
type Colors struct {
	Map    string `yaml:"map"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
	Snake  string `yaml:"snake"`
	Snake2 string `yaml:"snake2"`
	Rabbit string `yaml:"rabbit"`
}

// Config is the read only game configuration handed to the game at startup.
type Config struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	TileSize     int `yaml:"tile_size"`
	// MapWidth and MapHeight override the grid size derived from the screen.
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`

	StartSize   int  `yaml:"snake_start_size"`
	GrowLength  int  `yaml:"snake_grow_length"`
	HopDistance int  `yaml:"rabbit_hop_distance"`
	RabbitCount int  `yaml:"rabbit_count"`
	TwoPlayer   bool `yaml:"two_player"`
	TickRate    int  `yaml:"tick_rate"`

	Colors Colors `yaml:"colors"`
}

// Default returns the settings of the original game.
func Default() *Config {
	return &Config{
		ScreenWidth:  640,
		ScreenHeight: 400,
		TileSize:     10,
		StartSize:    5,
		GrowLength:   5,
		HopDistance:  5,
		RabbitCount:  1,
		TickRate:     15,
		Colors: Colors{
			Map:    "green",
			Border: "red",
			Text:   "black",
			Snake:  "black",
			Snake2: "blue",
			Rabbit: "white",
		},
	}
}

// Load reads the YAML file at path on top of the defaults, applies
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "config: unable to read %s", path)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrapf(err, "config: unable to parse %s", path)
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	c.MapWidth = getEnvInt("MAMBA_MAP_WIDTH", c.MapWidth)
	c.MapHeight = getEnvInt("MAMBA_MAP_HEIGHT", c.MapHeight)
	c.StartSize = getEnvInt("MAMBA_START_SIZE", c.StartSize)
	c.GrowLength = getEnvInt("MAMBA_GROW_LENGTH", c.GrowLength)
	c.HopDistance = getEnvInt("MAMBA_HOP_DISTANCE", c.HopDistance)
	c.RabbitCount = getEnvInt("MAMBA_RABBIT_COUNT", c.RabbitCount)
	c.TickRate = getEnvInt("MAMBA_TICK_RATE", c.TickRate)
	c.TwoPlayer = getEnvInt("MAMBA_TWO_PLAYER", boolToInt(c.TwoPlayer)) != 0
}

// Width of the grid in cells, border included.
func (c *Config) Width() int {
	if c.MapWidth > 0 {
		return c.MapWidth
	}
	if c.TileSize <= 0 {
		return 0
	}
	return c.ScreenWidth / c.TileSize
}

// Height of the grid in cells, border included.
func (c *Config) Height() int {
	if c.MapHeight > 0 {
		return c.MapHeight
	}
	if c.TileSize <= 0 {
		return 0
	}
	return c.ScreenHeight / c.TileSize
}

// Players is 2 in two player mode and 1 otherwise.
func (c *Config) Players() int {
	if c.TwoPlayer {
		return 2
	}
	return 1
}

// TickLimit is the tick rate as a rate limit for the tick scheduler.
func (c *Config) TickLimit() rate.Limit {
	return rate.Limit(c.TickRate)
}

// Error is returned for a missing or invalid configuration value. It is fatal
// at startup.
type Error struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Validate checks every numeric value and that each color is present.
func (c *Config) Validate() error {
	if c.MapWidth == 0 && c.TileSize <= 0 {
		return &Error{Field: "tile_size", Value: c.TileSize, Reason: "must be positive"}
	}
	w, h := c.Width(), c.Height()
	if w < 4 {
		return &Error{Field: "map_width", Value: w, Reason: "must be at least 4"}
	}
	if h < 4 {
		return &Error{Field: "map_height", Value: h, Reason: "must be at least 4"}
	}
	if c.StartSize < 1 {
		return &Error{Field: "snake_start_size", Value: c.StartSize, Reason: "must be positive"}
	}
	if c.StartSize > w/2 {
		return &Error{Field: "snake_start_size", Value: c.StartSize, Reason: fmt.Sprintf("must fit in half the map width (%d)", w/2)}
	}
	if c.GrowLength < 0 {
		return &Error{Field: "snake_grow_length", Value: c.GrowLength, Reason: "must not be negative"}
	}
	if c.HopDistance < 1 {
		return &Error{Field: "rabbit_hop_distance", Value: c.HopDistance, Reason: "must be positive"}
	}
	if c.RabbitCount < 0 {
		return &Error{Field: "rabbit_count", Value: c.RabbitCount, Reason: "must not be negative"}
	}
	interior := (w - 2) * (h - 2)
	if need := c.RabbitCount + c.Players()*c.StartSize; need > interior {
		return &Error{Field: "rabbit_count", Value: c.RabbitCount, Reason: fmt.Sprintf("%d cells needed, map interior has %d", need, interior)}
	}
	if c.TickRate < 1 {
		return &Error{Field: "tick_rate", Value: c.TickRate, Reason: "must be positive"}
	}

	colors := []struct {
		name  string
		value string
	}{
		{"colors.map", c.Colors.Map},
		{"colors.border", c.Colors.Border},
		{"colors.text", c.Colors.Text},
		{"colors.snake", c.Colors.Snake},
		{"colors.rabbit", c.Colors.Rabbit},
	}
	for _, col := range colors {
		if col.value == "" {
			return &Error{Field: col.name, Value: col.value, Reason: "missing"}
		}
	}
	if c.TwoPlayer && c.Colors.Snake2 == "" {
		return &Error{Field: "colors.snake2", Value: c.Colors.Snake2, Reason: "missing"}
	}
	return nil
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
