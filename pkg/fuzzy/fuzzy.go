// Package fuzzy scores how similar two short strings are on a 0..100 scale.
//
// The weighted score combines a plain edit-distance ratio with partial (best
// substring window) and token based ratios, so that typos, word order and extra
// words all still produce a useful score for game titles.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Normalize lowercases s, replaces everything but letters and digits with spaces
// and collapses whitespace.
func Normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// Ratio is the edit-distance similarity of a and b scaled to 0..100
func Ratio(a, b string) int {
	return round(ratio(a, b))
}

// PartialRatio compares the shorter string against every window of the longer one of
// equal length and returns the best ratio.
func PartialRatio(a, b string) int {
	return round(partialRatio(a, b))
}

// TokenSortRatio compares both strings after sorting their words
func TokenSortRatio(a, b string) int {
	return round(ratio(sortedTokens(a), sortedTokens(b)))
}

// TokenSetRatio compares the shared words of both strings against each side's remainder
func TokenSetRatio(a, b string) int {
	return round(tokenSetRatio(a, b))
}

// WeightedRatio normalizes both inputs and returns the best of the plain, partial and
// token ratios, down-weighting the partial and token scorers.
func WeightedRatio(a, b string) int {
	p1, p2 := Normalize(a), Normalize(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	base := ratio(p1, p2)
	l1, l2 := runeLen(p1), runeLen(p2)
	lenRatio := float64(max(l1, l2)) / float64(min(l1, l2))

	const unbaseScale = 0.95
	if lenRatio < 1.5 {
		tsort := ratio(sortedTokens(p1), sortedTokens(p2)) * unbaseScale
		tset := tokenSetRatio(p1, p2) * unbaseScale
		return round(math.Max(base, math.Max(tsort, tset)))
	}

	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}
	partial := partialRatio(p1, p2) * partialScale
	tsort := partialRatio(sortedTokens(p1), sortedTokens(p2)) * unbaseScale * partialScale
	tset := tokenSetRatio(p1, p2) * unbaseScale * partialScale
	return round(math.Max(base, math.Max(partial, math.Max(tsort, tset))))
}

// ExtractOne returns the choice with the highest WeightedRatio against query. Among equal
// scores the first choice wins. ok is false when choices is empty.
func ExtractOne(query string, choices []string) (best string, score int, ok bool) {
	score = -1
	for _, choice := range choices {
		s := WeightedRatio(query, choice)
		if s > score {
			best, score = choice, s
		}
	}
	if score < 0 {
		return "", 0, false
	}
	return best, score, true
}

func ratio(a, b string) float64 {
	la, lb := runeLen(a), runeLen(b)
	if la == 0 && lb == 0 {
		return 0
	}
	longest := max(la, lb)
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * float64(longest-dist) / float64(longest)
}

func partialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}
	s := string(short)
	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

func tokenSetRatio(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)

	var common, onlyA, onlyB []string
	for tok := range ta {
		if tb[tok] {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if !ta[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	intersection := strings.Join(common, " ")
	combinedA := strings.TrimSpace(intersection + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(intersection + " " + strings.Join(onlyB, " "))

	best := ratio(combinedA, combinedB)
	if intersection != "" {
		best = math.Max(best, ratio(intersection, combinedA))
		best = math.Max(best, ratio(intersection, combinedB))
	}
	return best
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func runeLen(s string) int {
	return len([]rune(s))
}

func round(f float64) int {
	return int(math.Round(f))
}
