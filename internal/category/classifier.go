package category

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// Suggest returns the category for an expense description.
//
// Every keyword that occurs in the description contributes its length to
// the score of its category, so that longer and therefore more specific
// keywords outweigh short generic ones. The category with the strictly
// highest score wins. When no keyword matches or two categories score
// equally, the Default category is returned.
//
// Matching is case-insensitive. Suggest is a pure function, it only
// depends on the description and the keyword table.
func Suggest(description string) Category {
	desc := strings.ToLower(description)

	best := Default
	maxScore := 0
	tied := false

	for _, c := range All {
		score := 0
		for _, keyword := range keywords[c] {
			if glob.Glob("*"+keyword+"*", desc) {
				score += len(keyword)
			}
		}

		if score > maxScore {
			best = c
			maxScore = score
			tied = false
		} else if score == maxScore && score > 0 {
			tied = true
		}
	}

	if maxScore == 0 || tied {
		return Default
	}

	return best
}
