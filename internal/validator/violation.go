package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidShape matches every *ShapeError through errors.Is.
	ErrInvalidShape = errors.New("invalid card shape")

	// ErrInvalidJSON is returned when a document cannot be decoded at all.
	ErrInvalidJSON = errors.New("invalid json")
)

// Kind classifies a single violation.
type Kind string

const (
	KindMissingRequiredField Kind = "missing_required_field"
	KindWrongType            Kind = "wrong_type"
	KindInvalidURLFormat     Kind = "invalid_url_format"
	KindInvalidEnumValue     Kind = "invalid_enum_value"
	KindInvalidNestedShape   Kind = "invalid_nested_shape"

	// Only reported when the matching Options flag is set.
	KindUnexpectedField      Kind = "unexpected_field"
	KindAmbiguousImageSource Kind = "ambiguous_image_source"
)

// Violation describes one way a document deviates from the card shape.
//
// Path uses dotted field access and indexed array access, e.g.
// card_faces[1].mana_cost or legalities.standard. Actual is the offending
// decoded value, nil when the field is absent.
type Violation struct {
	Path     string      `json:"path"`
	Kind     Kind        `json:"kind"`
	Expected string      `json:"expected,omitempty"`
	Actual   any         `json:"actual,omitempty"`
	Allowed  []string    `json:"allowed,omitempty"`
	Nested   []Violation `json:"nested,omitempty"`
}

// Message renders the violation without its path.
func (v Violation) Message() string {
	switch v.Kind {
	case KindMissingRequiredField:
		return fmt.Sprintf("required field is missing (expected %s)", v.Expected)
	case KindWrongType:
		return fmt.Sprintf("expected %s, got %s", v.Expected, describe(v.Actual))
	case KindInvalidURLFormat:
		return fmt.Sprintf("expected a valid URL, got %s", describe(v.Actual))
	case KindInvalidEnumValue:
		return fmt.Sprintf("invalid enum value %s, expected one of: %s", describe(v.Actual), strings.Join(v.Allowed, ", "))
	case KindInvalidNestedShape:
		return fmt.Sprintf("invalid %s: %d violation(s)", v.Expected, len(v.Nested))
	case KindUnexpectedField:
		return "unexpected field"
	case KindAmbiguousImageSource:
		return v.Expected
	default:
		return string(v.Kind)
	}
}

func (v Violation) String() string {
	return displayPath(v.Path) + ": " + v.Message()
}

// ShapeError carries every violation found in a single validation call.
type ShapeError struct {
	// Violations is the flat list of leaf violations with absolute paths,
	// in field declaration order.
	Violations []Violation

	tree []Violation
}

func newShapeError(tree []Violation) *ShapeError {
	return &ShapeError{
		Violations: flatten("", tree),
		tree:       tree,
	}
}

func (e *ShapeError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidShape.Error()
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidShape, strings.Join(parts, "; "))
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// Grouped returns the violations with every failing nested object collapsed
// into a single invalid_nested_shape entry. Paths inside Nested are relative
// to the enclosing entry.
func (e *ShapeError) Grouped() []Violation {
	return e.tree
}

// Has reports whether any violation was recorded at path.
func (e *ShapeError) Has(path string) bool {
	return len(e.Get(path)) > 0
}

// Get returns the violations recorded at path.
func (e *ShapeError) Get(path string) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Path == path {
			out = append(out, v)
		}
	}
	return out
}

// Paths returns the distinct violation paths in report order.
func (e *ShapeError) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range e.Violations {
		if !seen[v.Path] {
			paths = append(paths, v.Path)
			seen[v.Path] = true
		}
	}
	return paths
}

func (e *ShapeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Violations []Violation `json:"violations"`
	}{e.Violations})
}

// ExtractShapeError returns the *ShapeError wrapped in err, or nil.
func ExtractShapeError(err error) *ShapeError {
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr
	}
	return nil
}

func flatten(prefix string, tree []Violation) []Violation {
	var out []Violation
	for _, v := range tree {
		path := joinPath(prefix, v.Path)
		if v.Kind == KindInvalidNestedShape {
			out = append(out, flatten(path, v.Nested)...)
			continue
		}
		v.Path = path
		out = append(out, v)
	}
	return out
}

func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

func indexPath(key string, i int) string {
	return fmt.Sprintf("%s[%d]", key, i)
}

func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

// describe renders a decoded JSON value for an error message.
func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case bool:
		return fmt.Sprintf("boolean %t", v)
	case json.Number:
		return "number " + v.String()
	case float64, float32, int, int64, int32:
		return fmt.Sprintf("number %v", v)
	case map[string]any:
		return "object"
	case []any:
		return fmt.Sprintf("array of %d", len(v))
	default:
		return fmt.Sprintf("%T", v)
	}
}
