package config

// Pointer fields distinguish "absent" from a zero value; absent keeps the default.

type YAMLSettings struct {
	Threshold              *int     `yaml:"threshold"`
	BorderCutoff           *float64 `yaml:"border_cutoff"`
	ConvexHull             *bool    `yaml:"convex_hull"`
	ExcludeBorderSpecimens *bool    `yaml:"exclude_border_specimens"`
	ExpectedCount          *int     `yaml:"expected_count"`
	CircleDiameterMM       *float64 `yaml:"circle_diameter_mm"`
	TieBreak               *string  `yaml:"tie_break"`
	CircleIntensity        *bool    `yaml:"circle_intensity"`

	CircleArea         YAMLRange `yaml:"circle_area"`
	SpecimenAreaFactor YAMLRange `yaml:"specimen_area_factor"`

	Annotation YAMLAnnotation `yaml:"annotation"`
}

type YAMLRange struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

type YAMLAnnotation struct {
	CircleColor    *string  `yaml:"circle_color"`
	BoxColor       *string  `yaml:"box_color"`
	ContourColor   *string  `yaml:"contour_color"`
	LabelColor     *string  `yaml:"label_color"`
	Thickness      *int     `yaml:"thickness"`
	FontScale      *float64 `yaml:"font_scale"`
	LabelThickness *int     `yaml:"label_thickness"`
	LabelPrefix    *string  `yaml:"label_prefix"`
}
