package config

import (
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestMapSettings_Empty(t *testing.T) {
	s, err := MapSettings("x.yaml", YAMLSettings{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("empty dto should map to defaults")
	}
}

func TestMapSettings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		dto   YAMLSettings
		field string
	}{
		{"tie-break", YAMLSettings{TieBreak: ptr("coin")}, "tie_break"},
		{"cutoff", YAMLSettings{BorderCutoff: ptr(0.6)}, "params"},
		{"inverted band", YAMLSettings{CircleArea: YAMLRange{Min: ptr(0.9)}}, "params"},
		{"thickness", YAMLSettings{Annotation: YAMLAnnotation{Thickness: ptr(0)}}, "annotation.thickness"},
		{"font", YAMLSettings{Annotation: YAMLAnnotation{FontScale: ptr(-1.0)}}, "annotation.font_scale"},
		{"label colour", YAMLSettings{Annotation: YAMLAnnotation{LabelColor: ptr("#12")}}, "annotation.label_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapSettings("x.yaml", tt.dto)
			if !IsKind(err, KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("expected %s in error, got %v", tt.field, err)
			}
		})
	}
}

func TestError(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil {
		t.Error("nil Error should be safe to use")
	}
	e := &Error{Op: "config.load", Kind: KindNotFound, Path: "a.yaml"}
	if e.Error() != "config.load: not_found (path=a.yaml)" {
		t.Errorf("got %q", e.Error())
	}
}
