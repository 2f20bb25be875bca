package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rennick7/arena/obj"
)

//go:embed default.yaml
var defaultYAML []byte

// Spec is the tuning file. Fields left out of an override file keep
// the embedded defaults.
type Spec struct {
	MoveSpeed  float64 `yaml:"move_speed"`
	BoostSpeed float64 `yaml:"boost_speed"`

	FlashFrames int `yaml:"flash_frames"`
	BoostFrames int `yaml:"boost_frames"`
	TweenFrames int `yaml:"tween_frames"`

	ShakeFrames    int     `yaml:"shake_frames"`
	ShakeIntensity float64 `yaml:"shake_intensity"`

	BarWidth     float64 `yaml:"bar_width"`
	BarHeight    float64 `yaml:"bar_height"`
	LabelOffsetY float64 `yaml:"label_offset_y"`
	BarOffsetY   float64 `yaml:"bar_offset_y"`

	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
}

// Default returns the embedded tuning values.
func Default() Spec {
	var s Spec
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		panic("config: bad embedded default.yaml: " + err.Error())
	}
	return s
}

// Load reads an override file on top of the defaults. A missing file is
// not an error; the game runs on defaults alone.
func Load(path string) (Spec, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return s, nil
}

// Tuning maps the config file values onto the entity tuning struct.
func (s Spec) Tuning() obj.Tuning {
	return obj.Tuning{
		MoveSpeed:      s.MoveSpeed,
		BoostSpeed:     s.BoostSpeed,
		FlashFrames:    s.FlashFrames,
		TweenFrames:    s.TweenFrames,
		ShakeFrames:    s.ShakeFrames,
		ShakeIntensity: s.ShakeIntensity,
		BarWidth:       s.BarWidth,
		BarHeight:      s.BarHeight,
		LabelOffsetY:   s.LabelOffsetY,
		BarOffsetY:     s.BarOffsetY,
	}
}
