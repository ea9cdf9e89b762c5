package view

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/cinedex/internal/domain"
)

// Suggest offers up to limit "did you mean" titles for a search that
// matched nothing. Titles containing the query's characters in order rank
// first (closest first); titles with a word within typo distance follow.
func Suggest(records []domain.MediaRecord, text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" || limit <= 0 || len(records) == 0 {
		return nil
	}

	titles := make([]string, len(records))
	for i, r := range records {
		titles[i] = r.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(text, titles)
	sort.Stable(ranks)

	seen := make(map[string]bool)
	var out []string
	add := func(title string) bool {
		if !seen[title] {
			seen[title] = true
			out = append(out, title)
		}
		return len(out) >= limit
	}

	for _, r := range ranks {
		if add(r.Target) {
			return out
		}
	}

	needle := strings.ToLower(text)
	maxTypos := allowedTypos(len([]rune(needle)))
	if maxTypos == 0 {
		return out
	}

	type near struct {
		title string
		dist  int
	}
	var nears []near
	for _, title := range titles {
		best := -1
		for _, word := range words(title) {
			d := fuzzy.LevenshteinDistance(needle, word)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= maxTypos {
			nears = append(nears, near{title, best})
		}
	}
	sort.SliceStable(nears, func(i, j int) bool { return nears[i].dist < nears[j].dist })

	for _, n := range nears {
		if add(n.title) {
			break
		}
	}
	return out
}

// allowedTypos returns the number of typos allowed based on word length:
// 1-3 chars = 0, 4-6 chars = 1, 7+ chars = 2
func allowedTypos(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 6:
		return 1
	default:
		return 2
	}
}

func words(title string) []string {
	return strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
