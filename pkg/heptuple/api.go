package heptuple

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Default search and listing limits, matching the backend's own defaults.
const (
	DefaultSearchLimit  = 20
	DefaultHadithLimit  = 10
	DefaultExegeseLimit = 5
)

// AnalyzeOptions controls a text analysis request. The zero value matches
// the backend defaults: automatic language detection, confidence scores
// included, details omitted.
type AnalyzeOptions struct {
	// Language is "ar", "fr", "en", or "auto" (the default when empty).
	Language string

	// OmitConfidence drops the per-dimension confidence scores.
	OmitConfidence bool

	// IncludeDetails requests the backend's detailed analysis breakdown.
	IncludeDetails bool
}

func (o AnalyzeOptions) payload(text string) map[string]any {
	lang := o.Language
	if lang == "" {
		lang = "auto"
	}
	return map[string]any{
		"texte":              text,
		"langue":             lang,
		"include_confidence": !o.OmitConfidence,
		"include_details":    o.IncludeDetails,
	}
}

// SearchOptions controls federated and single-corpus searches. The zero
// value searches all three corpora with the default limit and no filters.
type SearchOptions struct {
	// Corpora restricts a federated search; empty means all three.
	Corpora []Corpus

	// Filters are backend-defined refinements (sourate_id, recueil, rite, ...).
	Filters map[string]any

	// Limit caps the result count; zero means DefaultSearchLimit.
	Limit int
}

func (o SearchOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultSearchLimit
	}
	return o.Limit
}

func (o SearchOptions) corpora() []Corpus {
	if len(o.Corpora) == 0 {
		return AllCorpora()
	}
	return o.Corpora
}

// CompareOptions controls a catalogue comparison request.
type CompareOptions struct {
	// DimensionsFocus restricts the comparison to specific dimensions (1-7).
	DimensionsFocus []int

	// OmitStatistics drops the statistics block; included by default.
	OmitStatistics bool
}

// ListSourates retrieves the full 114-chapter catalogue.
func (c *Client) ListSourates(ctx context.Context) ([]Sourate, error) {
	var sourates []Sourate
	if err := c.getJSON(ctx, "/v2/sourates", &sourates); err != nil {
		return nil, fmt.Errorf("list sourates: %w", err)
	}
	return sourates, nil
}

// GetSourate retrieves a single catalogue entry by its number (1-114).
func (c *Client) GetSourate(ctx context.Context, numero int) (*Sourate, error) {
	var sourate Sourate
	if err := c.getJSON(ctx, "/v2/sourates/"+strconv.Itoa(numero), &sourate); err != nil {
		return nil, fmt.Errorf("get sourate %d: %w", numero, err)
	}
	return &sourate, nil
}

// Analyze submits free text for heptuple dimension scoring.
func (c *Client) Analyze(ctx context.Context, text string, opts AnalyzeOptions) (*Analysis, error) {
	var analysis Analysis
	if err := c.postJSON(ctx, "/v2/analyze", opts.payload(text), &analysis); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return &analysis, nil
}

// AnalyzeEnriched submits text for scoring plus related reference material
// (hadiths, exegeses, citations, stories).
func (c *Client) AnalyzeEnriched(ctx context.Context, text string, opts AnalyzeOptions) (*EnrichedAnalysis, error) {
	var enriched EnrichedAnalysis
	if err := c.postJSON(ctx, "/v2/analyze-enriched", opts.payload(text), &enriched); err != nil {
		return nil, fmt.Errorf("analyze enriched: %w", err)
	}
	return &enriched, nil
}

// SearchUniversal runs a federated search across the selected corpora,
// with results grouped by corpus.
func (c *Client) SearchUniversal(ctx context.Context, query string, opts SearchOptions) (*UniversalSearchResult, error) {
	types := opts.corpora()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	payload := map[string]any{
		"query":        query,
		"search_types": names,
		"filters":      opts.Filters,
		"limit":        opts.limit(),
	}

	var result UniversalSearchResult
	if err := c.postJSON(ctx, "/v2/search/universal", payload, &result); err != nil {
		return nil, fmt.Errorf("universal search: %w", err)
	}
	return &result, nil
}

// SearchCorpus searches a single corpus with optional filters.
func (c *Client) SearchCorpus(ctx context.Context, corpus Corpus, query string, opts SearchOptions) (*CorpusSearchResult, error) {
	if !corpus.Valid() {
		return nil, fmt.Errorf("unknown corpus %q", corpus)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(opts.limit()))
	if len(opts.Filters) > 0 {
		filters, err := json.Marshal(opts.Filters)
		if err != nil {
			return nil, fmt.Errorf("marshal filters: %w", err)
		}
		params.Set("filters", string(filters))
	}

	var result CorpusSearchResult
	path := "/v2/search/" + string(corpus) + "?" + params.Encode()
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("search %s: %w", corpus, err)
	}
	return &result, nil
}

// SearchCoran searches the scripture corpus.
func (c *Client) SearchCoran(ctx context.Context, query string, opts SearchOptions) (*CorpusSearchResult, error) {
	return c.SearchCorpus(ctx, CorpusCoran, query, opts)
}

// SearchHadiths searches the sayings corpus.
func (c *Client) SearchHadiths(ctx context.Context, query string, opts SearchOptions) (*CorpusSearchResult, error) {
	return c.SearchCorpus(ctx, CorpusHadiths, query, opts)
}

// SearchFiqh searches the jurisprudence corpus.
func (c *Client) SearchFiqh(ctx context.Context, query string, opts SearchOptions) (*CorpusSearchResult, error) {
	return c.SearchCorpus(ctx, CorpusFiqh, query, opts)
}

// CompareSourates compares the heptuple profiles of two or more catalogue
// entries.
func (c *Client) CompareSourates(ctx context.Context, ids []int, opts CompareOptions) (*Comparison, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("compare requires at least 2 sourates, got %d", len(ids))
	}

	payload := map[string]any{
		"sourate_ids":        ids,
		"include_statistics": !opts.OmitStatistics,
	}
	if len(opts.DimensionsFocus) > 0 {
		payload["dimensions_focus"] = opts.DimensionsFocus
	}

	var comparison Comparison
	if err := c.postJSON(ctx, "/v2/compare", payload, &comparison); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	return &comparison, nil
}

// SubmitFeedback submits a rating of a previous analysis.
func (c *Client) SubmitFeedback(ctx context.Context, fb Feedback) error {
	if err := fb.Validate(); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}
	if _, err := c.Post(ctx, "/v2/feedback", fb); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}
	return nil
}

// ListDimensions retrieves the seven heptuple dimension descriptors.
func (c *Client) ListDimensions(ctx context.Context) ([]Dimension, error) {
	var dims []Dimension
	if err := c.getJSON(ctx, "/v2/dimensions", &dims); err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	return dims, nil
}

// HadithsByDimension lists sayings tagged with a heptuple dimension (1-7).
// A non-positive limit uses DefaultHadithLimit.
func (c *Client) HadithsByDimension(ctx context.Context, dimension, limit int) ([]Hadith, error) {
	if limit <= 0 {
		limit = DefaultHadithLimit
	}

	var hadiths []Hadith
	path := fmt.Sprintf("/v2/hadiths/%d?limit=%d", dimension, limit)
	if err := c.getJSON(ctx, path, &hadiths); err != nil {
		return nil, fmt.Errorf("hadiths for dimension %d: %w", dimension, err)
	}
	return hadiths, nil
}

// ExegesesByDimension lists commentary excerpts tagged with a heptuple
// dimension (1-7). A non-positive limit uses DefaultExegeseLimit.
func (c *Client) ExegesesByDimension(ctx context.Context, dimension, limit int) ([]Exegese, error) {
	if limit <= 0 {
		limit = DefaultExegeseLimit
	}

	var exegeses []Exegese
	path := fmt.Sprintf("/v2/exegeses/%d?limit=%d", dimension, limit)
	if err := c.getJSON(ctx, path, &exegeses); err != nil {
		return nil, fmt.Errorf("exegeses for dimension %d: %w", dimension, err)
	}
	return exegeses, nil
}
