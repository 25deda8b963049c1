// Package orchestrator runs the fixed request pipeline: validate,
// pending-operation check, classify, build.
package orchestrator

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/akaki911/aispace-sub003/internal/corpus"
	"github.com/akaki911/aispace-sub003/internal/intent"
	"github.com/akaki911/aispace-sub003/internal/model"
	"github.com/akaki911/aispace-sub003/internal/pending"
	"github.com/akaki911/aispace-sub003/internal/responder"
	"github.com/akaki911/aispace-sub003/pkg/logger"
	"github.com/akaki911/aispace-sub003/pkg/metrics"
)

// Normalized is a validated, trimmed inbound request.
type Normalized struct {
	Message  string
	UserID   string
	History  []model.HistoryEntry
	Metadata map[string]string
	Audience model.Audience
	Language string
	Model    string
}

// Orchestrator wires the classifier, pending tracker, corpus, and
// builder behind a single entry point.
type Orchestrator struct {
	classifier *intent.Classifier
	tracker    *pending.Tracker
	corpus     *corpus.Searcher
	builder    *responder.Builder
	log        *logger.Logger
}

// New creates an orchestrator.
func New(classifier *intent.Classifier, tracker *pending.Tracker, searcher *corpus.Searcher, builder *responder.Builder, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		tracker:    tracker,
		corpus:     searcher,
		builder:    builder,
		log:        log,
	}
}

// Validate checks the envelope shape. Invalid history entries are
// dropped during normalization rather than rejecting the request.
func Validate(req *model.ChatRequest) []model.FieldIssue {
	var issues []model.FieldIssue
	if req == nil || strings.TrimSpace(req.Message) == "" {
		issues = append(issues, model.FieldIssue{
			Field:   "message",
			Message: "message is required and must be non-empty",
		})
	}
	return issues
}

// Normalize trims history to the most recent valid entries, coerces
// roles, and resolves audience and language.
func Normalize(req *model.ChatRequest, defaultLanguage string) Normalized {
	n := Normalized{
		Message:  strings.TrimSpace(req.Message),
		UserID:   req.PersonalID,
		Metadata: req.Metadata,
		Model:    req.SelectedModel,
	}
	if n.UserID == "" {
		n.UserID = model.AnonymousUser
	}

	for _, entry := range req.ConversationHistory {
		if strings.TrimSpace(entry.Content) == "" {
			continue
		}
		switch entry.Role {
		case model.RoleUser, model.RoleAssistant, model.RoleSystem:
		default:
			entry.Role = model.RoleUser
		}
		n.History = append(n.History, entry)
	}
	if len(n.History) > model.MaxHistoryEntries {
		n.History = n.History[len(n.History)-model.MaxHistoryEntries:]
	}

	// Request-level audience wins over metadata; absent means admin.
	n.Audience = req.Audience
	if n.Audience == "" && req.Metadata != nil {
		n.Audience = model.Audience(req.Metadata["audience"])
	}
	if n.Audience != model.AudiencePublic {
		n.Audience = model.AudienceAdmin
	}

	n.Language = defaultLanguage
	if req.Metadata != nil && req.Metadata["language"] != "" {
		n.Language = req.Metadata["language"]
	}
	return n
}

// Handle processes one normalized request end to end. The user's slot
// lock is held for the whole pending-check → transition step.
func (o *Orchestrator) Handle(ctx context.Context, n Normalized) (*responder.Reply, error) {
	opts := responder.Options{Audience: n.Audience, Language: n.Language}

	var reply *responder.Reply
	err := o.tracker.WithUser(n.UserID, func() error {
		op, err := o.tracker.Peek(ctx, n.UserID)
		if err != nil {
			return err
		}
		if op != nil {
			reply, err = o.resolvePending(ctx, n, op, opts)
			return err
		}

		result := o.classifier.Classify(ctx, n.Message, n.History, n.UserID, n.Metadata)
		if result.Edit != nil {
			reply, err = o.proposeEdit(ctx, n, result.Edit, opts)
			return err
		}

		in := *result.Intent
		if in.Name == model.IntentGreeting {
			if err := o.classifier.Gate().Record(ctx, n.UserID); err != nil {
				o.log.Warn("failed to record greeting timestamp",
					zap.String("user_id", n.UserID), zap.Error(err))
			}
		}
		metrics.RecordIntent(string(in.Name), string(n.Audience))
		reply = o.builder.Build(in, opts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// resolvePending consumes (or re-prompts) a live confirmation. The
// yes/no vocabulary is tested before normal classification ever runs.
func (o *Orchestrator) resolvePending(ctx context.Context, n Normalized, op *pending.Operation, opts responder.Options) (*responder.Reply, error) {
	switch pending.Decide(n.Message) {
	case pending.DecisionConfirm:
		result := o.corpus.Apply(op.OldLabel, op.NewLabel, op.SearchResults)
		for _, f := range result.Failures {
			o.log.Warn("label edit skipped file",
				zap.String("file", f.File), zap.String("error", f.Err))
		}
		outcome := "success"
		if len(result.Failures) > 0 {
			outcome = "partial"
		}
		metrics.LabelEditsApplied.WithLabelValues(outcome).Inc()

		if err := o.tracker.Clear(ctx, n.UserID); err != nil {
			return nil, err
		}
		o.log.Info("label edit applied",
			zap.String("user_id", n.UserID),
			zap.String("old_label", op.OldLabel),
			zap.String("new_label", op.NewLabel),
			zap.Int("modified", result.Modified),
			zap.Int("failed", len(result.Failures)))
		return o.builder.BuildEditApplied(result.Modified, len(result.Failures), opts), nil

	case pending.DecisionReject:
		if err := o.tracker.Clear(ctx, n.UserID); err != nil {
			return nil, err
		}
		metrics.LabelEditsApplied.WithLabelValues("cancelled").Inc()
		return o.builder.BuildEditCancelled(opts), nil

	default:
		// Neither yes nor no: the slot stays unchanged and the same
		// confirmation prompt is re-issued.
		return o.builder.BuildEditPrompt(op.OldLabel, op.NewLabel, len(op.SearchResults), opts), nil
	}
}

// proposeEdit searches the corpus for the requested label and, when at
// least one occurrence exists, parks the operation for confirmation.
func (o *Orchestrator) proposeEdit(ctx context.Context, n Normalized, edit *model.EditRequest, opts responder.Options) (*responder.Reply, error) {
	matches, err := o.corpus.Search(edit.OldLabel)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return o.builder.BuildEditNotFound(edit.OldLabel, opts), nil
	}

	if err := o.tracker.Propose(ctx, n.UserID, pending.Operation{
		OldLabel:      edit.OldLabel,
		NewLabel:      edit.NewLabel,
		SearchResults: matches,
	}); err != nil {
		return nil, err
	}
	o.log.Info("label edit proposed",
		zap.String("user_id", n.UserID),
		zap.String("old_label", edit.OldLabel),
		zap.String("new_label", edit.NewLabel),
		zap.Int("files", len(matches)))
	return o.builder.BuildEditPrompt(edit.OldLabel, edit.NewLabel, len(matches), opts), nil
}

// Apology surfaces the builder's localized apology for error paths.
func (o *Orchestrator) Apology(lang string) string {
	return o.builder.Apology(lang)
}
