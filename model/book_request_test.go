package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBookUpsertRequestCoercion(t *testing.T) {
	payload := `{
		"title": " El Principito ",
		"author": "Antoine de Saint-Exupéry",
		"genre": "Fábula",
		"year": "1943",
		"pages": 96,
		"rating": "4.7",
		"reviews_count": null
	}`

	var req BookUpsertRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	book := req.ToBook()
	if book.Title != "El Principito" {
		t.Errorf("Title should be trimmed, got %q", book.Title)
	}
	if book.Year != 1943 || book.Pages != 96 || book.Rating != 4.7 {
		t.Errorf("Unexpected numerics: %+v", book)
	}
	if book.ReviewsCount != 0 {
		t.Errorf("Null reviews_count should default to 0, got %d", book.ReviewsCount)
	}
	if book.Tags == nil {
		t.Error("Tags should be normalized to an empty slice")
	}
}

func TestBookUpsertRequestMalformedYear(t *testing.T) {
	var req BookUpsertRequest
	if err := json.Unmarshal([]byte(`{"title":"A","author":"B","year":"soon"}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	book := req.ToBook()
	if book.Year != time.Now().Year() {
		t.Errorf("Malformed year should default to the current year, got %d", book.Year)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusToRead, StatusReading, StatusRead} {
		if !IsValidStatus(status) {
			t.Errorf("Expected %q to be valid", status)
		}
	}
	if IsValidStatus("finished") {
		t.Error(`"finished" is not a reading status`)
	}
}

func TestBookGenres(t *testing.T) {
	book := Book{Genre: "Ficción, Distopía, "}
	genres := book.Genres()
	if len(genres) != 2 || genres[0] != "Ficción" || genres[1] != "Distopía" {
		t.Errorf("Unexpected genres: %v", genres)
	}

	empty := Book{}
	if empty.Genres() != nil {
		t.Errorf("Expected nil for an empty genre, got %v", empty.Genres())
	}
}
