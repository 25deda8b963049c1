// Package responder renders intents into audience-aware structured
// replies. Builders are pure functions over the locale resolver and
// never perform I/O.
package responder

import (
	"strings"

	"github.com/akaki911/aispace-sub003/internal/locale"
	"github.com/akaki911/aispace-sub003/internal/model"
)

// Options select audience and language for one build. Audience is
// resolved once at the top of every builder entry point.
type Options struct {
	Audience model.Audience
	Language string
}

// Reply is the built response. For the public audience only Plain,
// Paragraphs, and QuickPicks are populated; for admin, Blocks and
// Metadata. Paragraphs carries the same text as Plain, pre-split for
// segmented replay.
type Reply struct {
	Audience   model.Audience
	Language   string
	Blocks     []model.LanguageBlock
	Plain      string
	Paragraphs []string
	QuickPicks []model.QuickPick
	Metadata   *model.ReplyMetadata
}

// Builder maps intents to replies via the template table.
type Builder struct {
	loc *locale.Resolver
}

// NewBuilder creates a builder over the locale resolver.
func NewBuilder(loc *locale.Resolver) *Builder {
	return &Builder{loc: loc}
}

// Build renders the reply for a classified intent. Unknown intent names
// default to the off-topic template.
func (b *Builder) Build(in model.Intent, opts Options) *Reply {
	audience, lang := b.resolve(opts)

	tmpl, ok := templates[in.Name]
	if !ok {
		tmpl = templates[model.IntentOffTopic]
	}
	sections := tmpl(b.loc, lang, in)

	telemetry := model.Telemetry{
		IntentDetected: string(in.Name),
		ParamMissing:   []string{},
	}
	if in.Name == model.IntentAvailability && len(in.MissingParams) > 0 {
		telemetry.ParamMissing = in.MissingParams
	}

	reply := b.assemble(audience, lang, sections, "", telemetry, in.Confidence)
	if audience == model.AudiencePublic {
		reply.QuickPicks = b.quickPicks(in, lang)
	}
	return reply
}

// BuildEditPrompt renders the confirmation prompt for a proposed label
// edit. Re-prompts regenerate from the same inputs, so the prompt is
// repeated verbatim.
func (b *Builder) BuildEditPrompt(oldLabel, newLabel string, files int, opts Options) *Reply {
	audience, lang := b.resolve(opts)
	sections := []model.Section{{
		Title:   b.loc.Resolve(lang, "edit.confirm.title"),
		Bullets: []string{b.loc.Resolvef(lang, "edit.confirm.body", oldLabel, newLabel, files)},
	}}
	return b.assemble(audience, lang, sections, "", editTelemetry(), editConfidence)
}

// BuildEditNotFound renders the reply for an edit whose label matched
// nothing in the corpus.
func (b *Builder) BuildEditNotFound(oldLabel string, opts Options) *Reply {
	audience, lang := b.resolve(opts)
	plain := b.loc.Resolvef(lang, "edit.notfound", oldLabel)
	return b.assemble(audience, lang, nil, plain, editTelemetry(), editConfidence)
}

// BuildEditApplied renders the outcome of a confirmed edit. Partial
// success reports both counts.
func (b *Builder) BuildEditApplied(modified, failed int, opts Options) *Reply {
	audience, lang := b.resolve(opts)
	plain := b.loc.Resolvef(lang, "edit.applied", modified)
	if failed > 0 {
		plain += " " + b.loc.Resolvef(lang, "edit.applied.failures", failed)
	}
	return b.assemble(audience, lang, nil, plain, editTelemetry(), editConfidence)
}

// BuildEditCancelled renders the reply for a rejected edit.
func (b *Builder) BuildEditCancelled(opts Options) *Reply {
	audience, lang := b.resolve(opts)
	plain := b.loc.Resolve(lang, "edit.cancelled")
	return b.assemble(audience, lang, nil, plain, editTelemetry(), editConfidence)
}

// Apology returns the localized user-safe apology for internal errors.
func (b *Builder) Apology(lang string) string {
	return b.loc.Resolve(lang, "error.apology")
}

const editConfidence = 0.9

func editTelemetry() model.Telemetry {
	return model.Telemetry{
		IntentDetected: "label_edit_request",
		ParamMissing:   []string{},
	}
}

func (b *Builder) resolve(opts Options) (model.Audience, string) {
	audience := opts.Audience
	if audience != model.AudiencePublic {
		audience = model.AudienceAdmin
	}
	return audience, b.loc.Normalize(opts.Language)
}

// assemble produces the mutually exclusive admin/public payloads.
func (b *Builder) assemble(audience model.Audience, lang string, sections []model.Section, plain string, telemetry model.Telemetry, confidence float64) *Reply {
	reply := &Reply{Audience: audience, Language: lang}

	if audience == model.AudiencePublic {
		reply.Paragraphs = b.flatten(plain, sections, lang)
		reply.Plain = strings.Join(reply.Paragraphs, "\n\n")
		return reply
	}

	if sections == nil && plain != "" {
		sections = []model.Section{{Bullets: []string{plain}}}
	}
	reply.Blocks = []model.LanguageBlock{{Language: lang, Sections: sections}}
	reply.Metadata = &model.ReplyMetadata{
		Intent:     displayName(telemetry.IntentDetected),
		Confidence: confidence,
		Telemetry:  telemetry,
	}
	return reply
}

func (b *Builder) quickPicks(in model.Intent, lang string) []model.QuickPick {
	gap := in.Name == model.IntentAvailability && len(in.MissingParams) > 0
	if in.Name != model.IntentGreeting && in.Name != model.IntentOffTopic && !gap {
		return nil
	}
	return []model.QuickPick{
		{Label: b.loc.Resolve(lang, "qp.availability"), Value: "check_availability"},
		{Label: b.loc.Resolve(lang, "qp.pricing"), Value: "pricing_info"},
		{Label: b.loc.Resolve(lang, "qp.contact"), Value: "contact_support"},
	}
}

// displayName normalizes raw intent names for telemetry display only;
// routing always uses the raw name.
func displayName(raw string) string {
	switch raw {
	case string(model.IntentAvailability):
		return "availability"
	case string(model.IntentPricing):
		return "pricing"
	case string(model.IntentWeather):
		return "weather"
	case string(model.IntentOffTopic):
		return "off_topic"
	default:
		return raw
	}
}
