// Package config loads web scenarios from YAML: the web to build and an
// optional script of operations to run on it.
//
//	strands: 7
//	favorite: 5
//	specs:
//	  - {distance: 20, strand: 0}
//	bridges:
//	  - {color: red, distance: 50, strand: 1, kind: weak}
//	strand_kinds:
//	  - {strand: 3, color: orange, kind: bouncy}
//	actions:
//	  - {op: move_to, strand: 5}
//
// Scenarios are validated with struct tags before anything is built.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/geom"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/web"
)

// ErrInvalidScenario wraps every parse, validation or build failure.
var ErrInvalidScenario = errors.New("config: invalid scenario")

var validate = validator.New()

// Scenario describes a web and what to do with it.
type Scenario struct {
	Strands  int    `yaml:"strands" validate:"min=1"`
	Favorite *int   `yaml:"favorite" validate:"omitempty,min=0"`
	Radius   int    `yaml:"radius" validate:"min=0,max=1000000000"`
	Seed     int64  `yaml:"seed"`
	Visible  bool   `yaml:"visible"`
	MaxHops  int    `yaml:"max_hops" validate:"min=0"`
	Center   *Point `yaml:"center"`

	Specs       []Spec        `yaml:"specs" validate:"dive"`
	Bridges     []BridgeEntry `yaml:"bridges" validate:"dive"`
	StrandKinds []StrandEntry `yaml:"strand_kinds" validate:"dive"`
	Actions     []Action      `yaml:"actions" validate:"dive"`
}

// Point is a YAML-friendly geom.Point.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Spec is one bulk bridge, named "{strand}-{distance}".
type Spec struct {
	Distance int `yaml:"distance" validate:"min=1,max=1000000000"`
	Strand   int `yaml:"strand" validate:"min=0"`
}

// BridgeEntry is a bridge with an explicit color and kind.
type BridgeEntry struct {
	Color    string       `yaml:"color" validate:"max=64"`
	Distance int          `yaml:"distance" validate:"min=0"`
	Strand   int          `yaml:"strand" validate:"min=0"`
	Kind     bridges.Kind `yaml:"kind"`
}

// StrandEntry customizes one strand.
type StrandEntry struct {
	Strand int           `yaml:"strand" validate:"min=0"`
	Color  string        `yaml:"color"`
	Kind   topology.Kind `yaml:"kind"`
}

// Load reads and validates the scenario at path.
func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks field ranges and cross-field constraints.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	if s.Favorite != nil && *s.Favorite >= s.Strands {
		return fmt.Errorf("%w: favorite %d not in [0,%d)", ErrInvalidScenario, *s.Favorite, s.Strands)
	}
	for i, sp := range s.Specs {
		if sp.Strand >= s.Strands {
			return fmt.Errorf("%w: specs[%d]: strand %d not in [0,%d)", ErrInvalidScenario, i, sp.Strand, s.Strands)
		}
	}
	return nil
}

// formatValidationError flattens validator errors into one message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			msgs[i] = fmt.Sprintf("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			msgs[i] = fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag())
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(msgs, "; "))
}

// Options translates the scenario settings into web options.
func (s Scenario) Options() []web.Option {
	opts := []web.Option{
		web.WithSeed(s.Seed),
		web.WithVisible(s.Visible),
		web.WithMaxHops(s.MaxHops),
	}
	if s.Center != nil {
		opts = append(opts, web.WithCenter(geom.Pt(s.Center.X, s.Center.Y)))
	}
	return opts
}

// Build constructs the web: bulk specs first (radius = largest distance plus
// padding, or Radius when larger), then strand kinds, then typed bridges.
// extra options are applied after the scenario's own.
func (s Scenario) Build(extra ...web.Option) (*web.Web, error) {
	opts := append(s.Options(), extra...)
	favorite := web.NoFavorite
	if s.Favorite != nil {
		favorite = *s.Favorite
	}

	var (
		w   *web.Web
		err error
	)
	if s.Radius == 0 || len(s.Specs) > 0 {
		specs := make([]web.Spec, len(s.Specs))
		for i, sp := range s.Specs {
			specs[i] = web.Spec{Distance: sp.Distance, Strand: sp.Strand}
		}
		w, err = web.FromSpecs(s.Strands, favorite, specs, opts...)
		if err == nil && !w.LastActionOK() {
			err = errors.New("a bulk bridge conflicts with an earlier one")
		}
		if err == nil && s.Radius > w.Radius() {
			err = w.ExpandRadius(s.Radius - w.Radius())
		}
	} else {
		w, err = web.New(s.Strands, s.Radius, opts...)
		if err == nil && favorite != web.NoFavorite {
			err = w.SetFavoriteStrand(favorite, web.FavoriteColor, topology.Normal)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	for i, st := range s.StrandKinds {
		if err := w.SetStrandKind(st.Strand, st.Color, st.Kind); err != nil {
			return nil, fmt.Errorf("%w: strand_kinds[%d]: %v", ErrInvalidScenario, i, err)
		}
	}
	for i, b := range s.Bridges {
		if err := w.AddBridge(b.Color, b.Distance, b.Strand, b.Kind); err != nil {
			return nil, fmt.Errorf("%w: bridges[%d]: %v", ErrInvalidScenario, i, err)
		}
	}
	return w, nil
}
