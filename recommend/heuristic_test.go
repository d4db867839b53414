package recommend

import (
	"strings"
	"testing"

	"github.com/bookmate-app/bookmate/model"
)

func TestScoreAuthorGenreAndRating(t *testing.T) {
	selected := []model.Book{
		{ID: 1, Title: "A", Author: "George Orwell", Genre: "Ficción", Rating: 4.9},
	}
	candidates := []model.Book{
		selected[0],
		{ID: 2, Title: "B", Author: "George Orwell", Genre: "Terror", Rating: 3.0},
		{ID: 3, Title: "C", Author: "Stephen King", Genre: "Terror", Rating: 4.6},
	}

	got := Score(selected, candidates, nil)

	if len(got) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(got))
	}

	// Same author (30) beats high rating (10).
	if got[0].Book.ID != 2 || got[0].Score != 30 {
		t.Errorf("Expected book 2 with score 30 first, got book %d with %d", got[0].Book.ID, got[0].Score)
	}
	if got[1].Book.ID != 3 || got[1].Score != 10 {
		t.Errorf("Expected book 3 with score 10 second, got book %d with %d", got[1].Book.ID, got[1].Score)
	}

	if len(got[0].Reasons) != 1 || !strings.Contains(got[0].Reasons[0], "George Orwell") {
		t.Errorf("Unexpected reasons for book 2: %v", got[0].Reasons)
	}
	if len(got[1].Reasons) != 1 || !strings.Contains(got[1].Reasons[0], "4.6") {
		t.Errorf("Unexpected reasons for book 3: %v", got[1].Reasons)
	}
}

func TestScoreTagPointsAreCapped(t *testing.T) {
	selected := []model.Book{
		{ID: 1, Author: "X", Genre: "G", Tags: []string{"a", "b", "c", "d", "e"}},
	}
	candidates := []model.Book{
		{ID: 2, Author: "Y", Genre: "H", Rating: 1.0, Tags: []string{"A", "B", "C", "D", "E"}},
	}

	got := Score(selected, candidates, nil)
	if len(got) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(got))
	}
	// Five matching tags would be 50, the cap holds it at 40. Matching is
	// case-insensitive.
	if got[0].Score != 40 {
		t.Errorf("Expected capped score 40, got %d", got[0].Score)
	}
}

func TestScoreGenreComparesRawString(t *testing.T) {
	selected := []model.Book{
		{ID: 1, Author: "X", Genre: "Ficción, Distopía"},
	}
	candidates := []model.Book{
		{ID: 2, Author: "Y", Genre: "Ficción", Rating: 1.0},
		{ID: 3, Author: "Z", Genre: "Ficción, Distopía", Rating: 1.0},
	}

	got := Score(selected, candidates, nil)
	if len(got) != 1 {
		t.Fatalf("Expected only the exact genre string to match, got %d results", len(got))
	}
	if got[0].Book.ID != 3 || got[0].Score != 20 {
		t.Errorf("Expected book 3 with score 20, got book %d with %d", got[0].Book.ID, got[0].Score)
	}
}

func TestScoreDropsZeroAndExcluded(t *testing.T) {
	selected := []model.Book{
		{ID: 1, Author: "X", Genre: "G"},
	}
	candidates := []model.Book{
		{ID: 2, Author: "Unrelated", Genre: "Other", Rating: 1.0},
		{ID: 3, Author: "X", Genre: "G", Rating: 5.0},
	}

	got := Score(selected, candidates, map[int]bool{3: true})
	if len(got) != 0 {
		t.Errorf("Expected no recommendations, got %v", got)
	}
}

func TestScoreSkipsSelectedBooks(t *testing.T) {
	selected := []model.Book{
		{ID: 1, Author: "X", Genre: "G", Rating: 5.0},
	}

	got := Score(selected, selected, nil)
	if len(got) != 0 {
		t.Errorf("A selected book must never recommend itself, got %v", got)
	}
}

func TestScoreStableOrderOnTies(t *testing.T) {
	selected := []model.Book{
		{ID: 1, Author: "X", Genre: "G"},
	}
	candidates := []model.Book{
		{ID: 2, Author: "X", Genre: "Other"},
		{ID: 3, Author: "X", Genre: "Other"},
	}

	got := Score(selected, candidates, nil)
	if len(got) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(got))
	}
	if got[0].Book.ID != 2 || got[1].Book.ID != 3 {
		t.Errorf("Ties must keep input order, got %d then %d", got[0].Book.ID, got[1].Book.ID)
	}
}
