package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/cursor"
	"github.com/katalvlaran/waypath/search"
)

// Scene kinds.
const (
	KindGrid  = "grid"
	KindGraph = "graph"
)

// Defaults applied by Parse to fields left empty.
const (
	DefaultAlgorithm = "astar"
	DefaultPolicy    = "clamp"
	DefaultAccuracy  = 0.5
	DefaultMetric    = "squared"
	DefaultSpacing   = 5.0
)

// ErrInvalidScene wraps every parse and validation failure.
var ErrInvalidScene = errors.New("scene: invalid scene")

// sceneValidate is shared by all configs; custom tags are registered once.
var sceneValidate *validator.Validate

func init() {
	sceneValidate = validator.New()
	_ = sceneValidate.RegisterValidation("algorithm", validateAlgorithm)
	_ = sceneValidate.RegisterValidation("policy", validatePolicy)
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	_, err := search.ParseAlgorithm(fl.Field().String())
	return err == nil
}

func validatePolicy(fl validator.FieldLevel) bool {
	_, err := cursor.ParsePolicy(fl.Field().String())
	return err == nil
}

// Config is the YAML form of a scene.
//
//	name: labyrinth
//	kind: grid
//	algorithm: astar
//	grid:
//	  pattern: ["..#", "..."]
//	  start: [0, 0]
//	  goal: [1, 2]
type Config struct {
	Name      string  `yaml:"name" validate:"required"`
	Kind      string  `yaml:"kind" validate:"required,oneof=grid graph"`
	Algorithm string  `yaml:"algorithm" validate:"algorithm"`
	Policy    string  `yaml:"policy" validate:"policy"`
	Accuracy  float64 `yaml:"accuracy" validate:"gt=0"`
	Metric    string  `yaml:"metric" validate:"oneof=squared euclidean manhattan"`

	// MaxDepth bounds recursive DFS; 0 keeps the library default.
	MaxDepth int `yaml:"max_depth" validate:"gte=0"`

	Grid  *GridConfig  `yaml:"grid" validate:"required_if=Kind grid"`
	Graph *GraphConfig `yaml:"graph" validate:"required_if=Kind graph"`
}

// GridConfig describes a labyrinth. Start and goal are [row, col] and are
// forced walkable.
type GridConfig struct {
	Pattern []string `yaml:"pattern" validate:"required,min=1,dive,required"`
	Spacing float64  `yaml:"spacing" validate:"gt=0"`
	Height  float64  `yaml:"height"`
	Start   []int    `yaml:"start" validate:"len=2,dive,gte=0"`
	Goal    []int    `yaml:"goal" validate:"len=2,dive,gte=0"`
}

// GraphConfig describes a free waypoint graph.
type GraphConfig struct {
	// Strict makes links to unknown waypoints an error instead of a no-op.
	Strict    bool             `yaml:"strict"`
	Waypoints []WaypointConfig `yaml:"waypoints" validate:"required,min=1,dive"`
	Links     []LinkConfig     `yaml:"links" validate:"dive"`
	Start     string           `yaml:"start" validate:"required"`
	Goal      string           `yaml:"goal" validate:"required"`
}

// WaypointConfig is one node of a waypoint graph. Walkable defaults to true.
type WaypointConfig struct {
	ID       string    `yaml:"id" validate:"required"`
	Position []float64 `yaml:"position" validate:"len=3"`
	Walkable *bool     `yaml:"walkable"`
}

// LinkConfig joins two waypoints; Dir is "uni" (default) or "bi".
type LinkConfig struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
	Dir  string `yaml:"dir" validate:"omitempty,oneof=uni bi"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidScene, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := sceneValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	if c.Policy == "" {
		c.Policy = DefaultPolicy
	}
	if c.Accuracy == 0 {
		c.Accuracy = DefaultAccuracy
	}
	if c.Metric == "" {
		c.Metric = DefaultMetric
	}
	if c.Grid != nil && c.Grid.Spacing == 0 {
		c.Grid.Spacing = DefaultSpacing
	}
}
