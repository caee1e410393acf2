package club

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/clubrank/internal/ranking"
	"github.com/sahilm/fuzzy"
)

// MemberMatch is a candidate member for a free-text name with its similarity score.
type MemberMatch struct {
	Member     ranking.Member
	Confidence float64
}

// MemberFinder resolves the names people type in Slack commands to members.
type MemberFinder struct {
	store ClubStore
}

// NewMemberFinder creates a new member finder.
func NewMemberFinder(store ClubStore) *MemberFinder {
	return &MemberFinder{store: store}
}

// minConfidence is the similarity below which a member is not suggested.
const minConfidence = 0.5

// Find returns up to five members whose name resembles query, best first.
// An exact (normalized) name match is returned alone.
func (f *MemberFinder) Find(ctx context.Context, clubID, query string) ([]MemberMatch, error) {
	members, err := f.store.ListMembers(ctx, clubID)
	if err != nil {
		return nil, err
	}

	q := normalizeName(query)
	if q == "" {
		return nil, nil
	}

	var matches []MemberMatch
	var candidates memberNames
	for _, m := range members {
		if m.Status == ranking.MemberSystem {
			continue
		}
		name := normalizeName(m.Name)
		candidates = append(candidates, memberName{member: m, name: name})
		if name == q {
			log.Debug("Exact member name match", "query", query, "memberID", m.ID)
			return []MemberMatch{{Member: m, Confidence: 1}}, nil
		}
		score := (stringSimilarity(q, name) + tokenSimilarity(q, name)) / 2
		if score >= minConfidence {
			matches = append(matches, MemberMatch{Member: m, Confidence: score})
		}
	}

	if len(matches) == 0 {
		// Abbreviations like "alsm" for "alice smith" have a poor edit distance
		// but match as a subsequence.
		for _, fm := range fuzzy.FindFrom(q, candidates) {
			matches = append(matches, MemberMatch{Member: candidates[fm.Index].member, Confidence: minConfidence})
		}
		if len(matches) > 0 {
			log.Debug("Subsequence member match", "query", query, "count", len(matches))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches, nil
}

type memberName struct {
	member ranking.Member
	name   string
}

// memberNames implements fuzzy.Source over normalized member names.
type memberNames []memberName

func (m memberNames) String(i int) string { return m[i].name }

func (m memberNames) Len() int { return len(m) }

// normalizeName lowercases, drops everything but letters and spaces, and
// collapses whitespace.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// stringSimilarity is 1 - levenshtein/maxLen over runes.
func stringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}
	maxLen := max(len(r1), len(r2))
	return 1.0 - float64(levenshteinDistance(r1, r2))/float64(maxLen)
}

// tokenSimilarity is the share of name components that have a close match in the other name.
func tokenSimilarity(s1, s2 string) float64 {
	tokens1 := strings.Fields(s1)
	tokens2 := strings.Fields(s2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}

	var matchCount int
	for _, t1 := range tokens1 {
		for _, t2 := range tokens2 {
			if stringSimilarity(t1, t2) > 0.8 {
				matchCount++
				break
			}
		}
	}
	return float64(matchCount) / float64(max(len(tokens1), len(tokens2)))
}

func levenshteinDistance(s1, s2 []rune) int {
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}
