package validator

import (
	"encoding/json"
	"math"
	"net/url"
	"sort"
	"strings"
)

// collector accumulates violations for one object level.
type collector struct {
	violations []Violation
}

func (c *collector) add(v Violation) {
	c.violations = append(c.violations, v)
}

func (c *collector) missing(path, expected string) {
	c.add(Violation{Path: path, Kind: KindMissingRequiredField, Expected: expected})
}

func (c *collector) wrongType(path, expected string, actual any) {
	c.add(Violation{Path: path, Kind: KindWrongType, Expected: expected, Actual: actual})
}

// nest records the violations of a nested object as one grouped entry.
func (c *collector) nest(path, shape string, child *collector) {
	if len(child.violations) == 0 {
		return
	}
	c.add(Violation{
		Path:     path,
		Kind:     KindInvalidNestedShape,
		Expected: shape,
		Nested:   child.violations,
	})
}

func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return newShapeError(c.violations)
}

// fields reads typed values out of one decoded JSON object, reporting every
// problem to its collector instead of stopping at the first.
type fields struct {
	m        map[string]any
	c        *collector
	opts     Options
	declared map[string]struct{}
}

func newFields(m map[string]any, c *collector, opts Options) *fields {
	return &fields{m: m, c: c, opts: opts, declared: make(map[string]struct{}, len(m))}
}

// lookup returns the raw value for key. Absent required keys are reported;
// absent optional keys are skipped silently.
func (f *fields) lookup(key, expected string, required bool) (any, bool) {
	f.declared[key] = struct{}{}
	v, ok := f.m[key]
	if !ok {
		if required {
			f.c.missing(key, expected)
		}
		return nil, false
	}
	return v, true
}

// finish reports undeclared keys when unknown fields are disallowed.
func (f *fields) finish() {
	if !f.opts.DisallowUnknownFields {
		return
	}
	var unknown []string
	for k := range f.m {
		if _, ok := f.declared[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		f.c.add(Violation{Path: k, Kind: KindUnexpectedField, Actual: f.m[k]})
	}
}

func (f *fields) str(key string) string {
	v, ok := f.lookup(key, "string", true)
	if !ok {
		return ""
	}
	s, _ := f.asString(key, v)
	return s
}

func (f *fields) optStr(key string) *string {
	v, ok := f.lookup(key, "string", false)
	if !ok {
		return nil
	}
	if s, ok := f.asString(key, v); ok {
		return &s
	}
	return nil
}

func (f *fields) asString(path string, v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		f.c.wrongType(path, "string", v)
	}
	return s, ok
}

func (f *fields) url(key string) string {
	v, ok := f.lookup(key, "url", true)
	if !ok {
		return ""
	}
	s, _ := f.asURL(key, v)
	return s
}

func (f *fields) optURL(key string) *string {
	v, ok := f.lookup(key, "url", false)
	if !ok {
		return nil
	}
	if s, ok := f.asURL(key, v); ok {
		return &s
	}
	return nil
}

func (f *fields) asURL(path string, v any) (string, bool) {
	s, ok := f.asString(path, v)
	if !ok {
		return "", false
	}
	if !validURL(s) {
		f.c.add(Violation{Path: path, Kind: KindInvalidURLFormat, Expected: "url", Actual: s})
		return "", false
	}
	return s, true
}

// validURL accepts absolute URLs with both a scheme and a host.
func validURL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func (f *fields) num(key string) float64 {
	v, ok := f.lookup(key, "number", true)
	if !ok {
		return 0
	}
	n, _ := f.asNumber(key, v)
	return n
}

func (f *fields) optNum(key string) *float64 {
	v, ok := f.lookup(key, "number", false)
	if !ok {
		return nil
	}
	if n, ok := f.asNumber(key, v); ok {
		return &n
	}
	return nil
}

func (f *fields) asNumber(path string, v any) (float64, bool) {
	n, ok := toFloat(v)
	if !ok {
		f.c.wrongType(path, "number", v)
	}
	return n, ok
}

func (f *fields) optInt(key string) *int {
	v, ok := f.lookup(key, "integer", false)
	if !ok {
		return nil
	}
	if n, ok := f.asInt(key, v); ok {
		return &n
	}
	return nil
}

func (f *fields) asInt(path string, v any) (int, bool) {
	n, ok := toInt(v)
	if !ok {
		f.c.wrongType(path, "integer", v)
	}
	return n, ok
}

func (f *fields) boolean(key string) bool {
	v, ok := f.lookup(key, "boolean", true)
	if !ok {
		return false
	}
	b, _ := f.asBool(key, v)
	return b
}

func (f *fields) optBool(key string) *bool {
	v, ok := f.lookup(key, "boolean", false)
	if !ok {
		return nil
	}
	if b, ok := f.asBool(key, v); ok {
		return &b
	}
	return nil
}

func (f *fields) asBool(path string, v any) (bool, bool) {
	b, ok := v.(bool)
	if !ok {
		f.c.wrongType(path, "boolean", v)
	}
	return b, ok
}

// strs reads a required string array. A present array always yields a
// non-nil slice so an empty array stays distinguishable from absence.
func (f *fields) strs(key string) []string {
	v, ok := f.lookup(key, "array of string", true)
	if !ok {
		return nil
	}
	return f.asStrings(key, v)
}

func (f *fields) optStrs(key string) []string {
	v, ok := f.lookup(key, "array of string", false)
	if !ok {
		return nil
	}
	return f.asStrings(key, v)
}

func (f *fields) asStrings(path string, v any) []string {
	return elements(f, path, v, "array of string", f.asString)
}

func (f *fields) optInts(key string) []int {
	v, ok := f.lookup(key, "array of integer", false)
	if !ok {
		return nil
	}
	return elements(f, key, v, "array of integer", f.asInt)
}

// elements validates every array element with elem, reporting failures at
// path[i]. It returns nil when the value is not an array or any element fails.
func elements[T any](f *fields, path string, v any, expected string, elem func(string, any) (T, bool)) []T {
	arr, ok := toSlice(v)
	if !ok {
		f.c.wrongType(path, expected, v)
		return nil
	}
	out := make([]T, 0, len(arr))
	valid := true
	for i, item := range arr {
		t, ok := elem(indexPath(path, i), item)
		if !ok {
			valid = false
			continue
		}
		out = append(out, t)
	}
	if !valid {
		return nil
	}
	return out
}

// enum is a closed set of string values.
type enum interface {
	~string
	Valid() bool
}

func enumValue[T enum](f *fields, key string, allowed []T) T {
	v, ok := f.lookup(key, "enum", true)
	if !ok {
		return ""
	}
	t, _ := asEnum(f, key, v, allowed)
	return t
}

func optEnum[T enum](f *fields, key string, allowed []T) *T {
	v, ok := f.lookup(key, "enum", false)
	if !ok {
		return nil
	}
	if t, ok := asEnum(f, key, v, allowed); ok {
		return &t
	}
	return nil
}

func asEnum[T enum](f *fields, path string, v any, allowed []T) (T, bool) {
	s, ok := f.asString(path, v)
	if !ok {
		return "", false
	}
	if t := T(s); !t.Valid() {
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		f.c.add(Violation{Path: path, Kind: KindInvalidEnumValue, Expected: "enum", Actual: s, Allowed: names})
		return "", false
	}
	return T(s), true
}

// mapping reads an object with arbitrary keys, validating every value with
// elem at path key.<name>. Keys are visited in sorted order.
func mapping[T any](f *fields, key string, required bool, elem func(string, any) (T, bool)) map[string]T {
	v, ok := f.lookup(key, "object", required)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		f.c.wrongType(key, "object", v)
		return nil
	}
	out := make(map[string]T, len(m))
	valid := true
	for _, name := range sortedKeys(m) {
		t, ok := elem(key+"."+name, m[name])
		if !ok {
			valid = false
			continue
		}
		out[name] = t
	}
	if !valid {
		return nil
	}
	return out
}

// object validates a nested object with fn, grouping its violations under path.
func object[T any](f *fields, path string, v any, shape string, fn func(*fields) T) (T, bool) {
	var zero T
	m, ok := v.(map[string]any)
	if !ok {
		f.c.wrongType(path, "object", v)
		return zero, false
	}
	child := &collector{}
	nf := newFields(m, child, f.opts)
	t := fn(nf)
	nf.finish()
	f.c.nest(path, shape, child)
	if len(child.violations) > 0 {
		return zero, false
	}
	return t, true
}

func optObject[T any](f *fields, key, shape string, fn func(*fields) T) *T {
	v, ok := f.lookup(key, "object", false)
	if !ok {
		return nil
	}
	if t, ok := object(f, key, v, shape, fn); ok {
		return &t
	}
	return nil
}

func optObjects[T any](f *fields, key, shape string, fn func(*fields) T) []T {
	v, ok := f.lookup(key, "array of object", false)
	if !ok {
		return nil
	}
	return elements(f, key, v, "array of "+shape, func(path string, item any) (T, bool) {
		return object(f, path, item, shape, fn)
	})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toSlice(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt accepts whole numbers that fit in an int, however they were
// decoded. 1e2 and 100.0 are integers; 1e19 is not.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), int64(int(n)) == n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), int64(int(i)) == i
		}
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	return int(f), true
}
