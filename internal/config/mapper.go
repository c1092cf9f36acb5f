package config

import (
	"image/color"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/pkg/colorutil"
)

// MapSettings applies dto on top of Defaults() and validates the result.
func MapSettings(path string, dto YAMLSettings) (Settings, error) {
	s := Defaults()
	p := &s.Params

	setInt(&p.Threshold, dto.Threshold)
	setFloat(&p.BorderCutoff, dto.BorderCutoff)
	setBool(&p.UseConvexHull, dto.ConvexHull)
	setBool(&p.ExcludeBorderSpecimens, dto.ExcludeBorderSpecimens)
	setInt(&p.ExpectedCount, dto.ExpectedCount)
	setFloat(&p.CircleDiameterMM, dto.CircleDiameterMM)
	setBool(&p.ReportCircleIntensity, dto.CircleIntensity)
	setFloat(&p.CircleAreaMin, dto.CircleArea.Min)
	setFloat(&p.CircleAreaMax, dto.CircleArea.Max)
	setFloat(&p.SpecimenAreaMinFactor, dto.SpecimenAreaFactor.Min)
	setFloat(&p.SpecimenAreaMaxFactor, dto.SpecimenAreaFactor.Max)

	if dto.TieBreak != nil {
		tb, err := cocoon.ParseTieBreak(*dto.TieBreak)
		if err != nil {
			return Settings{}, invalidField(path, "tie_break", err.Error())
		}
		p.TieBreak = tb
	}

	if err := p.Validate(); err != nil {
		return Settings{}, invalidField(path, "params", err.Error())
	}

	a := &s.Annotation
	colors := []struct {
		field string
		src   *string
		dst   *color.RGBA
	}{
		{"annotation.circle_color", dto.Annotation.CircleColor, &a.CircleColor},
		{"annotation.box_color", dto.Annotation.BoxColor, &a.BoxColor},
		{"annotation.contour_color", dto.Annotation.ContourColor, &a.ContourColor},
		{"annotation.label_color", dto.Annotation.LabelColor, &a.LabelColor},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		rgba, err := colorutil.ParseHex(*c.src)
		if err != nil {
			return Settings{}, invalidField(path, c.field, err.Error())
		}
		*c.dst = rgba
	}

	setInt(&a.Thickness, dto.Annotation.Thickness)
	setFloat(&a.FontScale, dto.Annotation.FontScale)
	setInt(&a.LabelThickness, dto.Annotation.LabelThickness)
	if dto.Annotation.LabelPrefix != nil {
		a.LabelPrefix = *dto.Annotation.LabelPrefix
	}

	switch {
	case a.Thickness <= 0:
		return Settings{}, invalidField(path, "annotation.thickness", "must be positive")
	case a.LabelThickness <= 0:
		return Settings{}, invalidField(path, "annotation.label_thickness", "must be positive")
	case a.FontScale <= 0:
		return Settings{}, invalidField(path, "annotation.font_scale", "must be positive")
	}

	return s, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
