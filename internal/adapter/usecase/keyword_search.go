package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
	"emerald-console/internal/debounce"
)

// DefaultKeywordDelay is how long the keyword query must stay unchanged
// before it is searched.
const DefaultKeywordDelay = 300 * time.Millisecond

// KeywordSearchView is a snapshot of the keyword widget.
type KeywordSearchView struct {
	Query       string
	Suggestions []domain.Keyword
	// Pending is set while the query waits for the debounce delay.
	Pending bool
	// Searching is set from the moment a query is typed until its results
	// (or its failure) arrive.
	Searching bool
}

// Busy reports whether more results may still arrive.
func (v KeywordSearchView) Busy() bool {
	return v.Pending || v.Searching
}

// KeywordSearch turns keystrokes into debounced dictionary searches.
// Responses to searches that were superseded by a newer query are dropped.
type KeywordSearch struct {
	ctx       context.Context
	api       port.Marketplace
	logger    *slog.Logger
	debouncer *debounce.Debouncer[string]

	mu          sync.Mutex
	seq         uint64
	query       string
	suggestions []domain.Keyword
	searching   bool
}

// NewKeywordSearch returns a search widget. Searches run with ctx since
// they outlive the request that typed the query.
func NewKeywordSearch(ctx context.Context, api port.Marketplace, logger *slog.Logger, delay time.Duration, opts ...debounce.Option) *KeywordSearch {
	s := &KeywordSearch{ctx: ctx, api: api, logger: logger}
	s.debouncer = debounce.New(delay, s.search, opts...)
	return s
}

// SetQuery records the text typed so far. Any search still in flight for
// an older query is discarded. A blank query clears the suggestions
// immediately and never reaches the network.
func (s *KeywordSearch) SetQuery(q string) {
	blank := strings.TrimSpace(q) == ""

	s.mu.Lock()
	s.query = q
	s.seq++
	s.searching = !blank
	if blank {
		s.suggestions = nil
	}
	s.mu.Unlock()

	if blank {
		s.debouncer.Cancel()
		return
	}
	s.debouncer.Set(q)
}

// Reset clears the query and suggestions.
func (s *KeywordSearch) Reset() {
	s.SetQuery("")
}

// Snapshot returns the current state for rendering.
func (s *KeywordSearch) Snapshot() KeywordSearchView {
	pending := s.debouncer.Pending()
	s.mu.Lock()
	defer s.mu.Unlock()
	return KeywordSearchView{
		Query:       s.query,
		Suggestions: append([]domain.Keyword(nil), s.suggestions...),
		Pending:     pending,
		Searching:   s.searching,
	}
}

// search runs on the debouncer's timer once q has settled. The raw query
// is sent, untrimmed.
func (s *KeywordSearch) search(q string) {
	s.mu.Lock()
	if q != s.query {
		s.mu.Unlock()
		return
	}
	seq := s.seq
	s.mu.Unlock()

	keywords, err := s.api.SearchKeywords(s.ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	s.searching = false
	if err != nil {
		s.logger.Warn("keyword search failed", slog.String("query", q), slog.Any("error", err))
		return
	}
	s.suggestions = domain.UniqueKeywords(keywords)
}
