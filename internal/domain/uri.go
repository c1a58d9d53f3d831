package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// RefKind discriminates the two URI schemes of the context sublanguage.
type RefKind int

const (
	// ValueRef is a value:<type>#<literal> scalar carrier.
	ValueRef RefKind = iota
	// ModelRef is an api:<model>#<id> remote model reference.
	ModelRef
)

// URIRef is a parsed scheme:path#fragment URI. For ValueRef the path is
// the scalar type name; for ModelRef it is the model name and the
// fragment is the object id.
type URIRef struct {
	Kind     RefKind
	Path     string
	Fragment string
	Raw      string
}

// ParseURIRef parses a sublanguage URI. URIs with an authority component
// or an unknown scheme are rejected. The fragment is taken verbatim,
// never percent-decoded: "value:str#a%20b" carries the literal "a%20b".
func ParseURIRef(uri string) (URIRef, error) {
	base, fragment, _ := strings.Cut(uri, "#")

	parsed, err := url.Parse(base)
	if err != nil {
		return URIRef{}, &UnsupportedURIError{URI: uri}
	}
	if parsed.Host != "" || parsed.User != nil || parsed.RawQuery != "" {
		return URIRef{}, &UnsupportedURIError{URI: uri}
	}

	// Opaque holds the path of an authority-less URI such as
	// "api:person#1".
	path := parsed.Opaque
	if path == "" {
		path = parsed.Path
	}

	switch parsed.Scheme {
	case "value":
		return URIRef{Kind: ValueRef, Path: path, Fragment: fragment, Raw: uri}, nil
	case "api":
		return URIRef{Kind: ModelRef, Path: path, Fragment: fragment, Raw: uri}, nil
	default:
		return URIRef{}, &UnsupportedURIError{URI: uri}
	}
}

// ScalarValue interprets a ValueRef according to the scalar rules:
// str verbatim, int/float numeric, bool true only for a
// case-insensitive "true" fragment, none always nil.
func (r URIRef) ScalarValue() (interface{}, error) {
	if r.Kind != ValueRef {
		return nil, &UnsupportedURIError{URI: r.Raw}
	}

	switch r.Path {
	case "str":
		return r.Fragment, nil
	case "int":
		value, err := strconv.Atoi(r.Fragment)
		if err != nil {
			return nil, &ScalarParseError{Value: r.Fragment, URI: r.Raw}
		}
		return value, nil
	case "float":
		value, err := strconv.ParseFloat(r.Fragment, 64)
		if err != nil {
			return nil, &ScalarParseError{Value: r.Fragment, URI: r.Raw}
		}
		return value, nil
	case "bool":
		return strings.EqualFold(r.Fragment, "true"), nil
	case "none":
		return nil, nil
	default:
		return nil, &UnsupportedScalarTypeError{Type: r.Path}
	}
}
