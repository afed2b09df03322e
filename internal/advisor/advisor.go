// Package advisor owns the live knowledge base and runs each chat turn
// against it.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/symptom-advisor/internal/adapter/cache"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
	"github.com/couchcryptid/symptom-advisor/internal/observability"
)

// Publisher receives one consultation event per answered turn.
type Publisher interface {
	Publish(ctx context.Context, c domain.Consultation) error
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithPublisher emits a consultation event after every turn.
func WithPublisher(p Publisher) Option {
	return func(a *Advisor) { a.publisher = p }
}

// WithReplyCache caches up to size replies once the knowledge base is loaded.
// A size of zero disables caching.
func WithReplyCache(size int) Option {
	return func(a *Advisor) { a.cacheSize = size }
}

// Advisor answers chat turns. Until Load completes it answers from the empty
// knowledge base, so every symptom query reports not found.
type Advisor struct {
	kb      atomic.Pointer[domain.KnowledgeBase]
	replies atomic.Pointer[cache.LRU[string, domain.Reply]]
	loaded  atomic.Bool

	cacheSize int
	publisher Publisher
	diaries   *domain.DiaryBook
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates an Advisor holding the empty knowledge base.
func New(logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Advisor {
	a := &Advisor{
		diaries: domain.NewDiaryBook(),
		logger:  logger,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.kb.Store(domain.EmptyKnowledgeBase())
	return a
}

// Load fetches, parses, and installs the knowledge base. On any fetch error
// the empty knowledge base is installed instead and the error is returned;
// the advisor keeps answering either way. Readiness flips once Load returns.
func (a *Advisor) Load(ctx context.Context, fetcher TableFetcher) error {
	defer a.loaded.Store(true)
	start := time.Now()

	raw, err := FetchTables(ctx, fetcher)
	if err != nil {
		a.install(domain.EmptyKnowledgeBase())
		a.metrics.KnowledgeBaseFailures.Inc()
		a.logger.Error("knowledge base load failed, serving empty knowledge base", "error", err)
		return fmt.Errorf("load knowledge base: %w", err)
	}

	parsed := domain.ParseTables(raw)
	for _, s := range parsed.Skipped {
		a.metrics.SkippedRows.WithLabelValues(string(s.Table)).Inc()
		a.logger.Debug("skipped source row", "table", s.Table, "line", s.Line, "reason", s.Reason)
	}

	kb := domain.BuildFromParsed(parsed)
	a.install(kb)

	elapsed := time.Since(start)
	a.metrics.KnowledgeBaseLoad.Observe(elapsed.Seconds())
	a.logger.Info("knowledge base loaded",
		"conditions", kb.Len(),
		"merged_rows", kb.MergedRows(),
		"skipped_rows", len(parsed.Skipped),
		"duration", elapsed,
	)
	return nil
}

func (a *Advisor) install(kb *domain.KnowledgeBase) {
	a.kb.Store(kb)
	a.replies.Store(cache.NewLRU[string, domain.Reply](a.cacheSize))
	a.metrics.KnowledgeBaseConditions.Set(float64(kb.Len()))
}

// CheckReadiness returns nil once the startup load has finished, even if it
// degraded to the empty knowledge base.
func (a *Advisor) CheckReadiness(_ context.Context) error {
	if !a.loaded.Load() {
		return errors.New("knowledge base has not finished loading")
	}
	return nil
}

// KnowledgeBase returns the active knowledge base.
func (a *Advisor) KnowledgeBase() *domain.KnowledgeBase {
	return a.kb.Load()
}

// Respond answers one turn and publishes its consultation event.
func (a *Advisor) Respond(ctx context.Context, input string) domain.Reply {
	reply := a.reply(input)

	a.metrics.Turns.WithLabelValues(string(reply.Intent)).Inc()
	if reply.Emergency {
		a.metrics.EmergencyTurns.Inc()
	}
	if reply.Intent == domain.IntentSymptom {
		a.metrics.CandidateCount.Observe(float64(reply.TotalCandidates))
		if len(reply.Candidates) == 0 {
			a.metrics.NotFound.Inc()
		}
	}

	a.publish(ctx, input, reply)
	return reply
}

func (a *Advisor) reply(input string) domain.Reply {
	// Nothing is cached against the startup placeholder knowledge base.
	replies := a.replies.Load()
	if !a.loaded.Load() || replies == nil {
		return domain.Respond(input, a.kb.Load())
	}

	key := strings.ToLower(input)
	if reply, ok := replies.Get(key); ok {
		a.metrics.ReplyCache.WithLabelValues("hit").Inc()
		return reply
	}
	a.metrics.ReplyCache.WithLabelValues("miss").Inc()

	reply := domain.Respond(input, a.kb.Load())
	replies.Put(key, reply)
	return reply
}

func (a *Advisor) publish(ctx context.Context, input string, reply domain.Reply) {
	if a.publisher == nil {
		return
	}
	event := domain.NewConsultation(input, reply)
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.metrics.EventsFailed.Inc()
		a.logger.Warn("publish consultation failed", "error", err, "consultation_id", event.ID)
		return
	}
	a.metrics.EventsPublished.Inc()
}

// Diary returns the symptom diary for session.
func (a *Advisor) Diary(session string) *domain.Diary {
	return a.diaries.For(session)
}

// RecordSymptom appends an entry to the session's diary.
func (a *Advisor) RecordSymptom(session, symptom string, severity int, notes string) (domain.DiaryEntry, error) {
	entry, err := a.diaries.For(session).Append(symptom, severity, notes)
	if err != nil {
		return domain.DiaryEntry{}, err
	}
	a.metrics.DiaryEntries.Inc()
	return entry, nil
}
