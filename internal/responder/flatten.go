package responder

import (
	"strings"

	"github.com/akaki911/aispace-sub003/internal/model"
)

// flatten produces the public reply as a paragraph list. First
// non-empty wins: explicit plain text, then flattened sections, then
// the localized generic fallback.
func (b *Builder) flatten(plain string, sections []model.Section, lang string) []string {
	if strings.TrimSpace(plain) != "" {
		return []string{plain}
	}
	if parts := SectionParagraphs(sections); len(parts) > 0 {
		return parts
	}
	return []string{b.loc.Resolve(lang, "fallback.generic")}
}

// FlattenSections concatenates titles, bullets, and CTA text in section
// order, one paragraph per section part.
func FlattenSections(sections []model.Section) string {
	return strings.Join(SectionParagraphs(sections), "\n\n")
}

// SectionParagraphs renders sections as individual paragraphs, in
// section order: title, joined bullets, CTA.
func SectionParagraphs(sections []model.Section) []string {
	var parts []string
	for _, s := range sections {
		if t := strings.TrimSpace(s.Title); t != "" {
			parts = append(parts, t)
		}
		var bullets []string
		for _, bl := range s.Bullets {
			if bl = strings.TrimSpace(bl); bl != "" {
				bullets = append(bullets, bl)
			}
		}
		if len(bullets) > 0 {
			parts = append(parts, strings.Join(bullets, "\n"))
		}
		if c := strings.TrimSpace(s.CTA); c != "" {
			parts = append(parts, c)
		}
	}
	return parts
}
