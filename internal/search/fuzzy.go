package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"github.com/treeline-ui/treeline/internal/listview"
)

// Match is one filter hit against the label index.
type Match struct {
	Index          int   // Position in the indexed list
	Score          int   // Match score (higher = better)
	MatchedIndexes []int // Character positions that matched (for highlighting)
}

// LabelIndex implements sahilm/fuzzy.Source over item labels.
// Lowercase labels are pre-computed at index time.
type LabelIndex struct {
	items       []*listview.Item
	lowerLabels []string
}

// NewLabelIndex builds an index over the visible items of a list view.
func NewLabelIndex(lv *listview.ListView) *LabelIndex {
	idx := &LabelIndex{}
	for _, it := range lv.Items() {
		idx.Add(it)
	}
	return idx
}

// Add appends one item to the index.
func (idx *LabelIndex) Add(it *listview.Item) {
	idx.items = append(idx.items, it)
	idx.lowerLabels = append(idx.lowerLabels, strings.ToLower(it.Label()))
}

// String returns the lowercase label at index i (implements fuzzy.Source)
func (idx *LabelIndex) String(i int) string { return idx.lowerLabels[i] }

// Len returns the number of indexed items (implements fuzzy.Source)
func (idx *LabelIndex) Len() int { return len(idx.items) }

// Item returns the indexed item at position i.
func (idx *LabelIndex) Item(i int) *listview.Item { return idx.items[i] }

// Filter runs a subsequence match over the index and returns hits in
// score order (best first). An empty query matches nothing.
func (idx *LabelIndex) Filter(query string) []Match {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || idx.Len() == 0 {
		return nil
	}

	found := sahilm.FindFrom(query, idx)

	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{
			Index:          m.Index,
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return matches
}

// Rank orders labels by closeness to the query. Subsequence hits rank
// first by edit distance; when there are none, labels within a typo
// tolerance proportional to the query length are ranked instead, so a
// near-miss query still surfaces its target.
func Rank(query string, labels []string) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	ranked := fuzzy.RankFindFold(query, labels)
	if len(ranked) > 0 {
		sort.Sort(ranked)
		out := make([]string, len(ranked))
		for i, r := range ranked {
			out[i] = r.Target
		}
		return out
	}

	// Typo tolerance: one edit per four query runes, minimum one.
	maxDist := 1 + len([]rune(query))/4

	type candidate struct {
		label string
		dist  int
	}
	var cands []candidate
	for _, label := range labels {
		if d := nearDistance(query, label); d <= maxDist {
			cands = append(cands, candidate{label: label, dist: d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.label
	}
	return out
}

// nearDistance measures the query against the whole label and against
// the label prefix of the same rune length, whichever is closer. A typo
// in a short query must not be drowned out by a long label tail.
func nearDistance(query, label string) int {
	lower := strings.ToLower(label)
	d := fuzzy.LevenshteinDistance(query, lower)
	runes := []rune(lower)
	if n := len([]rune(query)); n < len(runes) {
		if pd := fuzzy.LevenshteinDistance(query, string(runes[:n])); pd < d {
			d = pd
		}
	}
	return d
}
