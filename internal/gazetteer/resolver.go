package gazetteer

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vnaddress/resolver/internal/gazetteer/fuzzyindex"
)

// slot is one level's running best match during a single Resolve call.
// score is the best admitted effective similarity so far; lcs is the
// tie-breaker recorded at the time that match was admitted.
type slot struct {
	orig  string
	key   string
	lcs   int
	score float64
}

func (s *slot) filled() bool { return s.orig != "" }

// levelIndex bundles one administrative level's dictionary (for
// original-spelling lookup) with its fuzzy index (for approximate key
// search). Both are built once and never mutated afterward.
type levelIndex struct {
	dict  *dictionary
	index fuzzyindex.Index
}

func newLevelIndex(originals []string, kind fuzzyindex.Kind) *levelIndex {
	d := newDictionary(originals)
	return &levelIndex{dict: d, index: fuzzyindex.Build(kind, d.keys())}
}

func (li *levelIndex) originalOf(key string) string {
	o, _ := li.dict.original(key)
	return o
}

// Option configures a Resolver at construction time.
type Option func(*resolverConfig)

type resolverConfig struct {
	bias      float64
	fuzzyKind fuzzyindex.Kind
	logger    *zap.Logger
}

// WithBias overrides the additive bonus applied to prefix-guided
// matches. The spec treats 0.2 as an empirically tuned default, not a
// canonical constant; any strictly positive value that preserves
// ordering is acceptable.
func WithBias(bias float64) Option {
	return func(c *resolverConfig) { c.bias = bias }
}

// WithFuzzyIndexKind selects which fuzzy index realization (trie or
// BK-tree) backs every level. The two realizations are required to
// return identical result sets for the same query and budget, so this
// is purely a performance/implementation choice.
func WithFuzzyIndexKind(kind fuzzyindex.Kind) Option {
	return func(c *resolverConfig) { c.fuzzyKind = kind }
}

// WithLogger injects a *zap.Logger used for build-time and per-call
// debug tracing. Omitting it (or passing nil) leaves the Resolver
// silent, using a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *resolverConfig) { c.logger = logger }
}

// Resolver extracts a (ward, district, province) triple from noisy
// free-form input. A Resolver is built once from dictionaries and a
// reference graph, then reused across many Resolve calls; after
// construction its state is immutable, so concurrent calls are safe
// without locking.
type Resolver struct {
	byLevel map[Level]*levelIndex
	graph   *referenceGraph
	bias    float64
	logger  *zap.Logger
}

// NewResolver builds a Resolver from the three dictionaries' original
// name lists and the reference containment records. Building performs
// no I/O itself; reading dictionary and reference files is the loader
// package's job.
func NewResolver(provinces, districts, wards []string, records []ReferenceRecord, opts ...Option) *Resolver {
	cfg := resolverConfig{bias: 0.2, fuzzyKind: fuzzyindex.KindBKTree}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	start := time.Now()
	r := &Resolver{
		byLevel: map[Level]*levelIndex{
			LevelProvince: newLevelIndex(provinces, cfg.fuzzyKind),
			LevelDistrict: newLevelIndex(districts, cfg.fuzzyKind),
			LevelWard:     newLevelIndex(wards, cfg.fuzzyKind),
		},
		graph:  buildReferenceGraph(records),
		bias:   cfg.bias,
		logger: cfg.logger,
	}
	r.logger.Info("gazetteer built",
		zap.Int("provinces", len(provinces)),
		zap.Int("districts", len(districts)),
		zap.Int("wards", len(wards)),
		zap.Int("reference_records", len(records)),
		zap.Duration("took", time.Since(start)),
	)
	return r
}

// scoredMatch is one fuzzy-index hit carrying the ranking signals the
// resolver needs: the normalized key, the LCS overlap against the
// query, and the distance-normalized similarity score.
type scoredMatch struct {
	key   string
	lcs   int
	score float64
}

// rankedMatches runs the fuzzy index for level against query within
// maxDist and orders hits by (score desc, lcs desc): LCS only breaks
// ties on score. Both the prefix and the unprefixed path use this order.
func (r *Resolver) rankedMatches(level Level, query string, maxDist int) []scoredMatch {
	li := r.byLevel[level]
	raw := li.index.Search(query, maxDist)
	if len(raw) == 0 {
		return nil
	}
	out := make([]scoredMatch, 0, len(raw))
	for _, m := range raw {
		out = append(out, scoredMatch{
			key:   m.Key,
			lcs:   longestCommonSubsequence(query, m.Key),
			score: fuzzyScore(query, m.Key, m.Distance),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].lcs > out[j].lcs
	})
	return out
}

// allLevels fixes the order the unprefixed path probes levels in:
// top-down through the hierarchy, so a province or district admitted
// earlier in the same candidate is visible to the admission checks that
// follow it.
var allLevels = []Level{LevelProvince, LevelDistrict, LevelWard}

// tryAdmit walks ranked candidates in order and admits the first one
// that satisfies both the hierarchical constraint and the
// strictly-greater-score requirement for its level, per the spec's "take
// the first that satisfies hierarchical constraints" rule.
func (r *Resolver) tryAdmit(level Level, matches []scoredMatch, bias float64, ward, district, province *slot) {
	for _, m := range matches {
		effective := m.score + bias
		if r.admitOne(level, m, effective, ward, district, province) {
			return
		}
	}
}

func (r *Resolver) admitOne(level Level, m scoredMatch, effective float64, ward, district, province *slot) bool {
	switch level {
	case LevelProvince:
		if effective <= province.score {
			return false
		}
		province.orig = r.byLevel[LevelProvince].originalOf(m.key)
		province.key, province.lcs, province.score = m.key, m.lcs, effective
		if district.filled() && !r.graph.hasDistrict(m.key, district.key) {
			*district = slot{}
		}
		return true

	case LevelDistrict:
		if province.filled() && !r.graph.hasDistrict(province.key, m.key) {
			return false
		}
		if effective <= district.score {
			return false
		}
		district.orig = r.byLevel[LevelDistrict].originalOf(m.key)
		district.key, district.lcs, district.score = m.key, m.lcs, effective
		return true

	case LevelWard:
		switch {
		case province.filled() && district.filled():
			if !r.graph.hasWard(province.key, district.key, m.key) {
				return false
			}
		case province.filled():
			if !r.graph.wardInProvince(province.key, m.key) {
				return false
			}
		case district.filled():
			if !r.graph.wardInDistrict(district.key, m.key) {
				return false
			}
		}
		if effective <= ward.score {
			return false
		}
		ward.orig = r.byLevel[LevelWard].originalOf(m.key)
		ward.key, ward.lcs, ward.score = m.key, m.lcs, effective
		return true
	}
	return false
}

// run drives the candidate generator and fills ward, district, and
// province in place. It is shared by Resolve and ResolveDetail so both
// observe identical admission behavior. It returns how many candidate
// spans were generated and how many were actually examined before all
// three slots filled (or the candidates were exhausted), for the
// per-call debug trace.
func (r *Resolver) run(input string, ward, district, province *slot) (total, scanned int) {
	candidates := generateCandidates(input)
	total = len(candidates)
	for _, c := range candidates {
		if ward.filled() && district.filled() && province.filled() {
			return total, scanned
		}
		scanned++

		span := c.span
		d := maxEditDistance(strings.ReplaceAll(span, " ", ""))

		if plen, level := classifyPrefix(span); level != LevelNone {
			sub := strings.TrimSpace(span[plen:])
			if sub != "" {
				r.tryAdmit(level, r.rankedMatches(level, sub, d), r.bias, ward, district, province)
			}
		}

		for _, level := range allLevels {
			r.tryAdmit(level, r.rankedMatches(level, span, d), 0, ward, district, province)
		}
	}
	return total, scanned
}

// Resolve extracts (ward, district, province) from input. input may
// contain commas, mixed case, missing or present diacritics, and noise.
// An unfilled level is returned as the empty string; this is not an
// error.
func (r *Resolver) Resolve(input string) (ward, district, province string) {
	start := time.Now()
	var wardSlot, districtSlot, provinceSlot slot
	total, scanned := r.run(input, &wardSlot, &districtSlot, &provinceSlot)
	r.logger.Debug("resolve done",
		zap.Int("candidate_spans", total),
		zap.Int("spans_scanned", scanned),
		zap.Duration("took", time.Since(start)),
	)
	return wardSlot.orig, districtSlot.orig, provinceSlot.orig
}

// MatchDetail reports a resolved slot's original spelling alongside its
// admission score and a presentational Confidence blend, for CLIs and
// debugging. It is purely additive: it does not change Resolve's
// admission semantics.
type MatchDetail struct {
	Original   string
	Score      float64
	Confidence float64
}

// ResolveDetail behaves like Resolve but also reports per-slot
// admission scores and confidence.
func (r *Resolver) ResolveDetail(input string) (ward, district, province MatchDetail) {
	start := time.Now()
	var wardSlot, districtSlot, provinceSlot slot
	total, scanned := r.run(input, &wardSlot, &districtSlot, &provinceSlot)
	r.logger.Debug("resolve done",
		zap.Int("candidate_spans", total),
		zap.Int("spans_scanned", scanned),
		zap.Duration("took", time.Since(start)),
	)
	return r.detail(input, wardSlot), r.detail(input, districtSlot), r.detail(input, provinceSlot)
}

func (r *Resolver) detail(input string, s slot) MatchDetail {
	if !s.filled() {
		return MatchDetail{}
	}
	return MatchDetail{
		Original:   s.orig,
		Score:      s.score,
		Confidence: Confidence(Normalize(input), s.key),
	}
}
