package wellknown

import (
	"fmt"
	"strings"
	"unicode"
)

// Default names of the weave framework types the analyzer depends on.
const (
	DefaultRouting               = "github.com/gopherlabs/weave/routing"
	DefaultBinderTypeProvider    = "github.com/gopherlabs/weave/mvc/binding.BinderTypeProvider"
	DefaultBind                  = "github.com/gopherlabs/weave/mvc.Bind"
	DefaultResult                = "github.com/gopherlabs/weave/results.Result"
	DefaultActionResult          = "github.com/gopherlabs/weave/mvc.ActionResult"
	DefaultConvertToActionResult = "github.com/gopherlabs/weave/mvc/infrastructure.ConvertToActionResult"
)

// Names holds the fully-qualified names resolved into a [Set].
// Routing is a package path; every other field has the form "pkg/path.TypeName".
type Names struct {
	Routing               string
	BinderTypeProvider    string
	Bind                  string
	Result                string
	ActionResult          string
	ConvertToActionResult string
}

// DefaultNames returns the names of the weave framework types.
func DefaultNames() Names {
	return Names{
		Routing:               DefaultRouting,
		BinderTypeProvider:    DefaultBinderTypeProvider,
		Bind:                  DefaultBind,
		Result:                DefaultResult,
		ActionResult:          DefaultActionResult,
		ConvertToActionResult: DefaultConvertToActionResult,
	}
}

// TypeName is a parsed "pkg/path.TypeName" reference.
type TypeName struct {
	PkgPath string
	Name    string
}

// String returns the fully-qualified form.
func (n TypeName) String() string {
	return n.PkgPath + "." + n.Name
}

// ParseTypeName parses "pkg/path.TypeName".
// The type name must be an exported identifier.
func ParseTypeName(s string) (TypeName, error) {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return TypeName{}, fmt.Errorf("invalid type name %q: want pkg/path.TypeName", s)
	}

	name := s[lastDot+1:]
	// Dots also appear in domain names, so a lowercase tail means the
	// dot belonged to the path.
	if !unicode.IsUpper([]rune(name)[0]) || strings.Contains(name, "/") {
		return TypeName{}, fmt.Errorf("invalid type name %q: %q is not an exported type", s, name)
	}

	return TypeName{PkgPath: s[:lastDot], Name: name}, nil
}

// Validate checks that every name is well formed.
func (n Names) Validate() error {
	if strings.TrimSpace(n.Routing) == "" {
		return fmt.Errorf("routing package path is empty")
	}

	for _, s := range n.typeNames() {
		if _, err := ParseTypeName(s); err != nil {
			return err
		}
	}

	return nil
}

func (n Names) typeNames() []string {
	return []string{
		n.BinderTypeProvider,
		n.Bind,
		n.Result,
		n.ActionResult,
		n.ConvertToActionResult,
	}
}
