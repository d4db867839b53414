// Package recommend scores catalog books against a user's selection. The
// heuristic scorer here and the external service client share one result
// contract; callers must never conflate a failed service call with the
// heuristic finding nothing.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bookmate-app/bookmate/model"
)

const (
	authorPoints    = 30
	genrePoints     = 20
	tagPoints       = 10
	tagPointsMax    = 40
	ratingPoints    = 10
	ratingThreshold = 4.5
)

// Score evaluates every candidate not excluded and not itself selected.
// Candidates with a zero total are dropped; the rest are ordered by score
// descending with ties keeping input order.
//
// Genre matching compares the raw comma-joined genre string, not the split
// set the catalog filter uses. The mismatch is deliberate and observable:
// unifying the two would change scores.
func Score(selected []model.Book, candidates []model.Book, excluded map[int]bool) []model.Recommendation {
	selectedIDs := make(map[int]bool, len(selected))
	selectedAuthors := make(map[string]bool, len(selected))
	selectedGenres := make(map[string]bool, len(selected))
	selectedTags := make(map[string]bool)

	for _, book := range selected {
		selectedIDs[book.ID] = true
		selectedAuthors[book.Author] = true
		selectedGenres[book.Genre] = true
		for _, tag := range book.Tags {
			selectedTags[strings.ToLower(tag)] = true
		}
	}

	recommendations := make([]model.Recommendation, 0)

	for _, book := range candidates {
		if excluded[book.ID] || selectedIDs[book.ID] {
			continue
		}

		score := 0
		reasons := []string{}

		if selectedAuthors[book.Author] {
			score += authorPoints
			reasons = append(reasons, fmt.Sprintf("Same author: %s", book.Author))
		}

		if selectedGenres[book.Genre] {
			score += genrePoints
			reasons = append(reasons, fmt.Sprintf("Genre: %s", book.Genre))
		}

		matchingTags := make([]string, 0)
		for _, tag := range book.Tags {
			if selectedTags[strings.ToLower(tag)] {
				matchingTags = append(matchingTags, tag)
			}
		}
		if len(matchingTags) > 0 {
			tagScore := len(matchingTags) * tagPoints
			if tagScore > tagPointsMax {
				tagScore = tagPointsMax
			}
			score += tagScore
			reasons = append(reasons, fmt.Sprintf("Similar tags: %s", strings.Join(matchingTags, ", ")))
		}

		if book.Rating >= ratingThreshold {
			score += ratingPoints
			reasons = append(reasons, fmt.Sprintf("Highly rated: %.1f", book.Rating))
		}

		if score > 0 {
			recommendations = append(recommendations, model.Recommendation{
				Book:    book,
				Score:   score,
				Reasons: reasons,
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return recommendations
}
