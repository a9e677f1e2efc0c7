package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// Field describes one required path in a JSON document
type Field struct {
	Path     string
	Type     gjson.Type
	NonEmpty bool // strings only
	Nullable bool // JSON null is accepted in place of Type
	URL      bool // strings only: must be an absolute http(s) URL
}

// String is a required string field
func String(path string) Field {
	return Field{Path: path, Type: gjson.String}
}

// NonEmptyString is a required string field that must not be empty
func NonEmptyString(path string) Field {
	return Field{Path: path, Type: gjson.String, NonEmpty: true}
}

// NullableString is a field that must be present as a string or null
func NullableString(path string) Field {
	return Field{Path: path, Type: gjson.String, Nullable: true}
}

// URLString is a required string field holding an absolute http(s) URL
func URLString(path string) Field {
	return Field{Path: path, Type: gjson.String, NonEmpty: true, URL: true}
}

// Number is a required numeric field
func Number(path string) Field {
	return Field{Path: path, Type: gjson.Number}
}

// Require validates every field and returns a single error naming each
// failing path, or nil.
func Require(doc gjson.Result, fields ...Field) error {
	var problems []string
	for _, f := range fields {
		if msg := check(doc.Get(f.Path), f); msg != "" {
			problems = append(problems, f.Path+": "+msg)
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New("schema mismatch: " + strings.Join(problems, "; "))
}

func check(v gjson.Result, f Field) string {
	if !v.Exists() {
		return "missing"
	}
	if v.Type == gjson.Null && f.Nullable {
		return ""
	}
	if !typeMatches(v.Type, f.Type) {
		return fmt.Sprintf("expected %s, got %s", typeName(f.Type), typeName(v.Type))
	}
	if f.Type != gjson.String {
		return ""
	}
	if f.NonEmpty && strings.TrimSpace(v.Str) == "" {
		return "empty"
	}
	if f.URL {
		if err := ValidateURL(v.Str); err != nil {
			return err.Error()
		}
	}
	return ""
}

func typeMatches(got, want gjson.Type) bool {
	if want == gjson.True || want == gjson.False {
		return got == gjson.True || got == gjson.False
	}
	return got == want
}

func typeName(t gjson.Type) string {
	switch t {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	case gjson.JSON:
		return "object/array"
	default:
		return "unknown"
	}
}

// ValidateURL requires an absolute http or https URL with a host
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
