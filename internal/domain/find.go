package domain

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// FindText resolves a namespace-prefixed path below parent and returns the
// matched node's raw text, untrimmed. It returns nil when parent is nil, no
// node matches, the node is empty, or the node's text is the literal
// sentinel "unknown". Only the lowercase spelling is a sentinel here; see
// [OrDefault] for the capitalized attribute sentinel.
func FindText(parent *etree.Element, path string) *string {
	node := findElement(parent, path)
	if node == nil {
		return nil
	}
	text := node.Text()
	if text == "" || text == "unknown" {
		return nil
	}
	return &text
}

// FindTextOr is FindText with a non-null fallback.
func FindTextOr(parent *etree.Element, path, def string) string {
	if v := FindText(parent, path); v != nil {
		return *v
	}
	return def
}

// Attr returns the value of an attribute (optionally prefix-qualified, e.g.
// "xlink:href"), or nil when the element or attribute is absent.
func Attr(el *etree.Element, key string) *string {
	if el == nil {
		return nil
	}
	a := el.SelectAttr(key)
	if a == nil {
		return nil
	}
	return &a.Value
}

// CastFloat converts a text value to a float. A nil input or a value that
// does not parse yields nil, never an error.
func CastFloat(v *string) *float64 {
	if v == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil {
		return nil
	}
	return &f
}

// OrDefault substitutes def when v is nil or the literal sentinel "Unknown".
// Used for unit-of-measure attributes and similar enumerations.
func OrDefault(v *string, def string) string {
	if v == nil || *v == "Unknown" {
		return def
	}
	return *v
}

// ParseCoordinates splits a space-delimited interval string into a
// start/end pair. Nil and "Unknown" inputs yield nil. Each token is coerced
// independently, so a malformed token nulls only its own slot, and a string
// with fewer than two tokens yields a partial pair with End nil.
func ParseCoordinates(raw *string) *Coordinates {
	if raw == nil || *raw == "Unknown" {
		return nil
	}
	tokens := strings.Split(*raw, " ")
	pair := &Coordinates{Start: CastFloat(&tokens[0])}
	if len(tokens) > 1 {
		pair.End = CastFloat(&tokens[1])
	}
	return pair
}

// findElement is a nil-tolerant FindElement.
func findElement(parent *etree.Element, path string) *etree.Element {
	if parent == nil {
		return nil
	}
	return parent.FindElement(path)
}

// elementText returns an element's raw text without sentinel filtering,
// or nil for absent or empty elements. Numeric principal values go through
// this rather than FindText because the schemas never use the "unknown"
// sentinel on them.
func elementText(el *etree.Element) *string {
	if el == nil {
		return nil
	}
	text := el.Text()
	if text == "" {
		return nil
	}
	return &text
}
