package config

import (
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/geometry"
)

// Inputs are the exercise inputs that can be supplied from a YAML file.
// Zero values mean "use the built-in defaults".
type Inputs struct {
	View       string
	Owned      string
	Values     []int64
	Rectangles []geometry.Rectangle
}

// yamlInputs mirrors the on-disk layout.
type yamlInputs struct {
	Text struct {
		View  string `yaml:"view"`
		Owned string `yaml:"owned"`
	} `yaml:"text"`
	Values     []int64              `yaml:"values"`
	Rectangles []geometry.Rectangle `yaml:"rectangles"`
}

// LoadInputs reads exercise inputs from a YAML file. An empty path yields
// zero Inputs.
func LoadInputs(path string) (Inputs, error) {
	if path == "" {
		return Inputs{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Inputs{}, apperrors.NewConfigError("reading inputs: %v", err)
	}

	var dto yamlInputs
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Inputs{}, apperrors.NewConfigError("parsing %s: %v", path, err)
	}
	return Inputs{
		View:       dto.Text.View,
		Owned:      dto.Text.Owned,
		Values:     dto.Values,
		Rectangles: dto.Rectangles,
	}, nil
}
