package config

import (
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/pkg/colorutil"
)

func TestLoad_EmptyPath(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "settings.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Params
	if p.Threshold != 150 || p.BorderCutoff != 0.05 || p.UseConvexHull {
		t.Errorf("binarize/position settings not applied: %+v", p)
	}
	if p.ExpectedCount != 12 || p.CircleDiameterMM != 90 || p.TieBreak != cocoon.TieBreakLargest {
		t.Errorf("circle settings not applied: %+v", p)
	}
	if p.CircleAreaMin != 0.25 || p.CircleAreaMax != 0.80 {
		t.Errorf("circle area band: got [%v, %v]", p.CircleAreaMin, p.CircleAreaMax)
	}
	if !p.ReportCircleIntensity {
		t.Errorf("unset keys should keep defaults")
	}

	a := s.Annotation
	if a.CircleColor != (color.RGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Errorf("circle colour: got %v", a.CircleColor)
	}
	if a.BoxColor != colorutil.Blue || a.Thickness != 3 || a.LabelPrefix != "C" {
		t.Errorf("annotation: got %+v", a)
	}
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join("testdata", "missing.yaml")
	_, err := Load(path)
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "settings_malformed.yaml"))
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoad_InvalidParams(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "settings_invalid.yaml"))
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "threshold") {
		t.Fatalf("expected field in error, got %v", err)
	}
}

func TestLoad_BadColor(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "settings_bad_color.yaml"))
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "annotation.box_color") {
		t.Fatalf("expected field in error, got %v", err)
	}
}
