package cocoon

import "fmt"

// Severity ranks a diagnostic for the reporter.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// DiagnosticKind identifies a non-fatal condition found during analysis.
type DiagnosticKind string

const (
	KindCircleMissing   DiagnosticKind = "circle-missing"
	KindCountMismatch   DiagnosticKind = "count-mismatch"
	KindAmbiguousCircle DiagnosticKind = "ambiguous-circle"
	KindCircleIntensity DiagnosticKind = "circle-intensity"
	KindCircleFit       DiagnosticKind = "circle-fit"
)

// Diagnostic is a structured observation produced by the pipeline.
// Analysis never prints; the reporter decides how to surface these.
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s", d.Severity, d.Kind, d.Message)
}

func warnf(kind DiagnosticKind, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

func infof(kind DiagnosticKind, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)}
}
