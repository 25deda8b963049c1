// Package locale maps (language, key-path) pairs to translated strings,
// with compiled-in defaults when no bundle file is configured.
package locale

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Resolver resolves key paths against an optional YAML bundle, then the
// compiled-in defaults.
type Resolver struct {
	bundle      *koanf.Koanf
	defaultLang string
}

// New creates a resolver. bundlePath may be empty, in which case only
// the compiled-in defaults are used.
func New(defaultLang, bundlePath string) (*Resolver, error) {
	r := &Resolver{defaultLang: defaultLang}
	if r.defaultLang == "" {
		r.defaultLang = "ka"
	}

	if bundlePath != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(bundlePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load locale bundle: %w", err)
		}
		r.bundle = k
	}
	return r, nil
}

// DefaultLanguage returns the language used when a request carries none.
func (r *Resolver) DefaultLanguage() string {
	return r.defaultLang
}

// Normalize maps an arbitrary requested language to a supported one.
func (r *Resolver) Normalize(lang string) string {
	switch lang {
	case "ka", "en":
		return lang
	case "":
		return r.defaultLang
	default:
		return "en"
	}
}

// Resolve returns the string for key in lang. Fallback chain: bundle →
// compiled default for lang → compiled default for en → the key itself.
func (r *Resolver) Resolve(lang, key string) string {
	lang = r.Normalize(lang)

	if r.bundle != nil {
		if s := r.bundle.String(lang + "." + key); s != "" {
			return s
		}
	}
	if m, ok := defaults[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := defaults["en"][key]; ok {
		return s
	}
	return key
}

// Resolvef resolves key and formats it with args.
func (r *Resolver) Resolvef(lang, key string, args ...any) string {
	return fmt.Sprintf(r.Resolve(lang, key), args...)
}
