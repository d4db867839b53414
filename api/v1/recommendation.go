package v1

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/http/request"
	"github.com/bookmate-app/bookmate/http/response"
	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/model"
	"github.com/bookmate-app/bookmate/recommend"
)

// maxRecommendations caps the heuristic result list.
const maxRecommendations = 6

// getRecommendations scores the catalog against the posted selection.
// When an external recommendation service is configured its answer is
// authoritative: a failed call is a 502, never a silent fall back to the
// built-in scorer.
func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	var req model.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if len(req.BookIDs) == 0 {
		response.BadRequest(w, r, errors.New("book_ids is empty"))
		return
	}

	if h.recommendClient != nil {
		recommendations, err := h.recommendClient.Recommendations(r.Context(), req.BookIDs)
		if err != nil {
			response.BadGateway(w, r, err)
			return
		}
		response.OK(w, r, recommendations)
		return
	}

	books, err := h.store.GetCatalog()
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	selected := make([]model.Book, 0, len(req.BookIDs))
	for _, id := range req.BookIDs {
		for i := range books {
			if books[i].ID == id {
				selected = append(selected, books[i])
				break
			}
		}
	}
	if len(selected) == 0 {
		response.OK(w, r, []model.Recommendation{})
		return
	}

	// Books already in the user's library are never recommended back.
	excluded := make(map[int]bool)
	userID := request.GetUserID(r)
	entries, err := h.store.ListLibraryEntries(userID)
	if err != nil {
		log.Warn("Failed to list library entries for exclusion",
			zap.Int("user_id", userID),
			zap.Error(err))
	} else {
		for _, entry := range entries {
			excluded[entry.BookID] = true
		}
	}

	recommendations := recommend.Score(selected, books, excluded)
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	response.OK(w, r, recommendations)
}
