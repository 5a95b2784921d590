// Package config loads the weatherbot configuration: a YAML file on top of
// built-in defaults, then environment overrides read once at start-up.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/gridgraph"
)

// Default RASP sites.
const (
	HollisterURL   = "https://rasp.nfshost.com/hollister"
	NorcalCoastURL = "https://rasp.nfshost.com/norcal-coast"
)

// Config holds all weatherbot settings.
type Config struct {
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string `yaml:"log_format" validate:"oneof=json text"`
	MetricsFile string `yaml:"metrics_file"`

	Source Source `yaml:"source"`

	XC    Classifier `yaml:"xc"`
	Wave  Classifier `yaml:"wave"`
	Local Classifier `yaml:"local"`
}

// Source configures where forecast files come from.
type Source struct {
	// ArchiveDir, when set, reads files from disk instead of the web.
	ArchiveDir        string        `yaml:"archive_dir"`
	Timeout           time.Duration `yaml:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `yaml:"requests_per_second" validate:"gte=0"`
	Workers           int           `yaml:"workers" validate:"gte=1,lte=64"`
}

// Point is a grid cell written as [x, y].
type Point [2]int

// Coordinate converts p to a grid.Coordinate.
func (p Point) Coordinate() grid.Coordinate { return grid.C(p[0], p[1]) }

// Classifier configures one kind of classifier and its batch schedule.
type Classifier struct {
	Enabled   bool   `yaml:"enabled"`
	Name      string `yaml:"name" validate:"required"`
	BaseURL   string `yaml:"base_url" validate:"omitempty,url"`
	Lookahead int    `yaml:"lookahead" validate:"gte=1,lte=14"`
	Times     []int  `yaml:"times" validate:"min=1,dive,gte=0,lte=2400"`

	Weight    []float64 `yaml:"weight"`
	Bias      *float64  `yaml:"bias"`
	Threshold *float64  `yaml:"threshold"`

	Start     *Point               `yaml:"start"`
	End       *Point               `yaml:"end"`
	Site      *Point               `yaml:"site"`
	CostModel *gridgraph.CostModel `yaml:"cost_model"`
}

// Params converts the overrides into classifier.Params.
func (c Classifier) Params() classifier.Params {
	p := classifier.Params{
		Weight:    c.Weight,
		Bias:      c.Bias,
		Threshold: c.Threshold,
		CostModel: c.CostModel,
	}
	if c.Start != nil {
		s := c.Start.Coordinate()
		p.Start = &s
	}
	if c.End != nil {
		e := c.End.Coordinate()
		p.End = &e
	}
	if c.Site != nil {
		s := c.Site.Coordinate()
		p.Site = &s
	}

	return p
}

// For returns the section for kind.
func (c *Config) For(kind classifier.Kind) (*Classifier, error) {
	switch kind {
	case classifier.KindXC:
		return &c.XC, nil
	case classifier.KindWave:
		return &c.Wave, nil
	case classifier.KindLocal:
		return &c.Local, nil
	default:
		return nil, fmt.Errorf("%w: %q", classifier.ErrUnknownKind, kind)
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cm := gridgraph.DefaultCostModel()

	return &Config{
		LogLevel:  "info",
		LogFormat: "json",
		Source: Source{
			Timeout:           30 * time.Second,
			RequestsPerSecond: 4,
			Workers:           4,
		},
		XC: Classifier{
			Enabled:   true,
			Name:      "KCVH",
			BaseURL:   NorcalCoastURL,
			Lookahead: 7,
			Times:     []int{1400},
			CostModel: &cm,
		},
		Wave: Classifier{
			Enabled:   true,
			Name:      "KCVH",
			BaseURL:   HollisterURL,
			Lookahead: 3,
			Times:     []int{1000, 1100, 1200, 1300, 1400, 1500, 1600},
		},
		Local: Classifier{
			Name:      "KCVH",
			BaseURL:   HollisterURL,
			Lookahead: 3,
			Times:     []int{1400},
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode merges a YAML document into cfg. Unknown keys are rejected.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and every enabled classifier's cost
// model and name.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, kind := range classifier.Kinds() {
		sec, _ := c.For(kind)
		if sec.CostModel != nil {
			if err := sec.CostModel.Validate(); err != nil {
				return fmt.Errorf("config: %s.cost_model: %w", kind, err)
			}
		}
		if _, err := classifier.New(kind, sec.Name, sec.Params()); err != nil {
			return fmt.Errorf("config: %s: %w", kind, err)
		}
	}

	return nil
}

// applyEnv applies WEATHERBOT_* and LOG_* overrides.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("WEATHERBOT_ARCHIVE_DIR"); ok {
		c.Source.ArchiveDir = v
	}
	if v, ok := os.LookupEnv("WEATHERBOT_METRICS_FILE"); ok {
		c.MetricsFile = v
	}
	base, hasBase := os.LookupEnv("WEATHERBOT_BASE_URL")

	for _, kind := range classifier.Kinds() {
		sec, _ := c.For(kind)
		prefix := "WEATHERBOT_" + strings.ToUpper(string(kind)) + "_"
		if hasBase {
			sec.BaseURL = base
		}
		if v, ok := os.LookupEnv(prefix + "URL"); ok {
			sec.BaseURL = v
		}
		if v, ok := os.LookupEnv(prefix + "WEIGHT"); ok {
			w, err := parseWeight(v)
			if err != nil {
				return fmt.Errorf("%sWEIGHT: %w", prefix, err)
			}
			sec.Weight = w
		}
		if v, ok := os.LookupEnv(prefix + "BIAS"); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%sBIAS: %w", prefix, err)
			}
			sec.Bias = &f
		}
		if v, ok := os.LookupEnv(prefix + "THRESHOLD"); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%sTHRESHOLD: %w", prefix, err)
			}
			sec.Threshold = &f
		}
	}

	return nil
}

// parseWeight splits a colon-separated list such as "0.6:0.5:0.4".
func parseWeight(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
