package script

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/regiontree"
	"github.com/npillmayer/regiontree/policy"
	"gopkg.in/yaml.v3"
)

// Settings configure an int64 region tree.
type Settings struct {
	Policy   string `yaml:"policy"`    // name of a stock policy, see policy.Names
	Init     int64  `yaml:"init"`      // initial cell value
	MaxRow   int    `yaml:"max_row"`   // largest row index, 0 for the default
	MaxCol   int    `yaml:"max_col"`   // largest column index, 0 for the default
	MaxNodes int    `yaml:"max_nodes"` // node budget, 0 for unlimited
}

// DefaultSettings returns settings for an accumulating tree with default
// bounds.
func DefaultSettings() Settings {
	return Settings{Policy: "accumulate"}
}

// ParseSettings reads settings from YAML. Fields not present keep their
// default values, unknown fields are an error.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, errors.Wrap(err, "parse settings")
	}
	return s, nil
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), errors.Wrapf(err, "read settings %s", path)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return s, errors.Wrapf(err, "settings file %s", path)
	}
	tracer().Debugf("script: loaded settings from %s: %+v", path, s)
	return s, nil
}

// Config translates s into a tree configuration.
func (s Settings) Config() (regiontree.Config[int64, int64], error) {
	var cfg regiontree.Config[int64, int64]
	p, ok := policy.Lookup(s.Policy)
	if !ok {
		return cfg, errors.Wrapf(regiontree.ErrInvalidConfig, "unknown policy %q, known are %s",
			s.Policy, strings.Join(policy.Names(), ", "))
	}
	if s.MaxRow < 0 || s.MaxCol < 0 {
		return cfg, errors.Wrapf(regiontree.ErrInvalidConfig, "negative bounds max_row=%d, max_col=%d",
			s.MaxRow, s.MaxCol)
	}
	cfg.Policy = p
	cfg.Init = s.Init
	cfg.MaxNodes = s.MaxNodes
	if s.MaxRow > 0 {
		cfg.Rows = s.MaxRow + 1
	}
	if s.MaxCol > 0 {
		cfg.Cols = s.MaxCol + 1
	}
	return cfg, nil
}

// NewTree creates a tree configured by s.
func NewTree(s Settings) (*regiontree.Tree[int64, int64], error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	return regiontree.New(cfg)
}
