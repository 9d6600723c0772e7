// Package diagnostic declares the diagnostics minimalactions reports.
package diagnostic

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Severity of a diagnostic. go/analysis has no severity of its own; the
// value is informational for drivers that surface it.
type Severity string

// Warning is the only severity minimalactions uses.
const Warning Severity = "warning"

// Descriptor describes one kind of diagnostic.
type Descriptor struct {
	ID       string
	Title    string
	Format   string
	Category string
	Severity Severity
	HelpURL  string
}

const helpURL = "https://pkg.go.dev/github.com/mpyw/minimalactions"

// BindingMetadata is reported for model-binding metadata on a handler parameter.
// Format arguments: metadata type, callee name.
var BindingMetadata = Descriptor{
	ID:       "MA0001",
	Title:    "Do not use model binding metadata with Map handlers",
	Format:   "%s should not be specified for a %s delegate parameter",
	Category: "Usage",
	Severity: Warning,
	HelpURL:  helpURL + "#hdr-Binding_metadata",
}

// ActionResult is reported for a handler returning an MVC action result.
// Format arguments: action result type, callee name, result package path.
var ActionResult = Descriptor{
	ID:       "MA0002",
	Title:    "Do not use action results with Map handlers",
	Format:   "%s instances should not be returned from a %s delegate parameter. Consider returning an equivalent result from %s.",
	Category: "Usage",
	Severity: Warning,
	HelpURL:  helpURL + "#hdr-Action_results",
}

// All returns every descriptor.
func All() []Descriptor {
	return []Descriptor{BindingMetadata, ActionResult}
}

// New builds a diagnostic for d at pos.
func (d Descriptor) New(pos token.Pos, args ...any) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      pos,
		Category: d.ID,
		Message:  fmt.Sprintf(d.Format, args...),
		URL:      d.HelpURL,
	}
}
