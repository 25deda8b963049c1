package stream

import (
	"fmt"
	"sort"
	"strings"
)

// Content is the resolved shape of a heterogeneous reply payload.
type Content interface {
	// Text renders the content as a single plain-text document.
	Text() string
}

// PlainText is an already-flat reply.
type PlainText string

// Text implements Content.
func (p PlainText) Text() string { return string(p) }

// Paragraphs is a reply already split into paragraph units.
type Paragraphs []string

// Text implements Content.
func (p Paragraphs) Text() string { return strings.Join(p, "\n\n") }

// KeyedFields is a reply shaped as labelled values.
type KeyedFields map[string]string

// Text implements Content.
func (k KeyedFields) Text() string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+": "+k[key])
	}
	return strings.Join(lines, "\n\n")
}

// contentKeys are the field names a content-bearing object may use.
var contentKeys = []string{"content", "text", "response", "message"}

// Resolve maps an arbitrary reply payload onto the content union.
func Resolve(v any) Content {
	switch p := v.(type) {
	case nil:
		return PlainText("")
	case string:
		return PlainText(p)
	case []string:
		return Paragraphs(p)
	case map[string]string:
		return KeyedFields(p)
	case map[string]any:
		for _, key := range contentKeys {
			if inner, ok := p[key]; ok {
				return Resolve(inner)
			}
		}
		flat := make(KeyedFields, len(p))
		for key, val := range p {
			flat[key] = fmt.Sprint(val)
		}
		return flat
	case fmt.Stringer:
		return PlainText(p.String())
	default:
		return PlainText(fmt.Sprint(v))
	}
}
