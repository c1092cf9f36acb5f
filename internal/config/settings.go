// Package config loads measurement settings from an optional YAML file.
// Every key is optional; anything left out keeps its default.
package config

import (
	"image/color"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/pkg/colorutil"
)

// Annotation describes the overlay drawn on output photographs.
type Annotation struct {
	CircleColor    color.RGBA
	BoxColor       color.RGBA
	ContourColor   color.RGBA
	LabelColor     color.RGBA
	Thickness      int
	FontScale      float64
	LabelThickness int
	LabelPrefix    string
}

// Settings is the complete configuration of a measurement run.
type Settings struct {
	Params     cocoon.Params
	Annotation Annotation
}

// Defaults returns the settings used when no file is given. The overlay is
// sized for full-resolution lab photographs, several thousand pixels wide.
func Defaults() Settings {
	return Settings{
		Params: cocoon.DefaultParams(),
		Annotation: Annotation{
			CircleColor:    colorutil.Green,
			BoxColor:       colorutil.Blue,
			ContourColor:   colorutil.Red,
			LabelColor:     colorutil.Black,
			Thickness:      5,
			FontScale:      3,
			LabelThickness: 5,
			LabelPrefix:    "Cocoon_",
		},
	}
}
