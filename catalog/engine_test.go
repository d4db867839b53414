package catalog

import (
	"testing"

	"github.com/bookmate-app/bookmate/model"
)

func sampleBooks() []model.Book {
	return []model.Book{
		{ID: 1, Title: "José y los Dragones", Author: "María Pérez", Genre: "Fantasía", Year: 2021, Pages: 150, Rating: 4.2, Tags: []string{"dragones"}},
		{ID: 2, Title: "1984", Author: "George Orwell", Genre: "Ficción, Distopía", Year: 1949, Pages: 328, Rating: 4.9, Tags: []string{"clásico", "distopía"}},
		{ID: 3, Title: "It", Author: "Stephen King", Genre: "Terror", Year: 1986, Pages: 1138, Rating: 4.6, Tags: []string{"clásico"}},
		{ID: 4, Title: "Don Quijote", Author: "Miguel de Cervantes", Genre: "Clásico", Year: 1605, Pages: 863, Rating: 4.1, Tags: []string{}},
		{ID: 5, Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "Historia", Year: 2011, Pages: 496, Rating: 4.4, Tags: []string{"humanidad"}},
		{ID: 6, Title: "Novela de 1850", Author: "Anónimo", Genre: "Clásico", Year: 1850, Pages: 250, Rating: 3.8, Tags: []string{}},
	}
}

func TestRenderEmptyCatalog(t *testing.T) {
	page := Render([]model.Book{}, model.CatalogQuery{})

	if page.TotalMatched != 0 || page.TotalPages != 0 {
		t.Errorf("Expected empty totals, got %d matched over %d pages", page.TotalMatched, page.TotalPages)
	}
	if page.Books == nil || len(page.Books) != 0 {
		t.Errorf("Expected an empty non-nil slice, got %v", page.Books)
	}
}

func TestRenderNoFiltersReturnsEverything(t *testing.T) {
	books := sampleBooks()
	page := Render(books, model.CatalogQuery{PageSize: 100})

	if page.TotalMatched != len(books) {
		t.Errorf("Expected %d matched, got %d", len(books), page.TotalMatched)
	}
	if page.TotalPages != 1 {
		t.Errorf("Expected 1 page, got %d", page.TotalPages)
	}
}

func TestSearchIgnoresDiacritics(t *testing.T) {
	page := Render(sampleBooks(), model.CatalogQuery{Search: "jose"})

	if page.TotalMatched != 1 {
		t.Fatalf("Expected 1 match, got %d", page.TotalMatched)
	}
	if page.Books[0].ID != 1 {
		t.Errorf("Expected book 1, got %d", page.Books[0].ID)
	}
}

func TestSearchMatchesAuthorAndTags(t *testing.T) {
	if page := Render(sampleBooks(), model.CatalogQuery{Search: "orwell"}); page.TotalMatched != 1 {
		t.Errorf("Author search: expected 1 match, got %d", page.TotalMatched)
	}
	if page := Render(sampleBooks(), model.CatalogQuery{Search: "clasico"}); page.TotalMatched != 4 {
		// The "Clásico" genre and the "clásico" tags fold to the same term.
		t.Errorf("Tag search: expected 4 matches, got %d", page.TotalMatched)
	}
}

func TestGenreFilterSplitsAndORs(t *testing.T) {
	page := Render(sampleBooks(), model.CatalogQuery{Genres: []string{"Distopía", "Terror"}})

	if page.TotalMatched != 2 {
		t.Fatalf("Expected 2 matches, got %d", page.TotalMatched)
	}
	seen := map[int]bool{}
	for _, b := range page.Books {
		seen[b.ID] = true
	}
	if !seen[2] || !seen[3] {
		t.Errorf("Expected books 2 and 3, got %v", seen)
	}
}

func TestYearRangeAncient(t *testing.T) {
	page := Render(sampleBooks(), model.CatalogQuery{YearRange: model.YearRangeAncient, PageSize: 100})

	for _, b := range page.Books {
		if b.Year >= 1900 {
			t.Errorf("Book %d from %d should not be in the ancient bucket", b.ID, b.Year)
		}
	}
	if page.TotalMatched != 2 {
		t.Errorf("Expected 1605 and 1850, got %d matches", page.TotalMatched)
	}
}

func TestPagesRangeBuckets(t *testing.T) {
	cases := []struct {
		bucket  string
		wantIDs map[int]bool
	}{
		{model.PagesRangeShort, map[int]bool{1: true}},
		{model.PagesRangeMedium, map[int]bool{2: true, 6: true}},
		{model.PagesRangeLong, map[int]bool{5: true}},
		{model.PagesRangeEpic, map[int]bool{3: true, 4: true}},
	}

	for _, tc := range cases {
		page := Render(sampleBooks(), model.CatalogQuery{PagesRange: tc.bucket, PageSize: 100})
		if page.TotalMatched != len(tc.wantIDs) {
			t.Errorf("Bucket %s: expected %d matches, got %d", tc.bucket, len(tc.wantIDs), page.TotalMatched)
			continue
		}
		for _, b := range page.Books {
			if !tc.wantIDs[b.ID] {
				t.Errorf("Bucket %s: unexpected book %d with %d pages", tc.bucket, b.ID, b.Pages)
			}
		}
	}
}

func TestDefaultSortIsRatingDesc(t *testing.T) {
	page := Render(sampleBooks(), model.CatalogQuery{PageSize: 100})

	for i := 1; i < len(page.Books); i++ {
		if page.Books[i-1].Rating < page.Books[i].Rating {
			t.Fatalf("Books are not sorted by rating descending: %f before %f",
				page.Books[i-1].Rating, page.Books[i].Rating)
		}
	}
}

func TestSortByTitleHandlesAccents(t *testing.T) {
	page := Render(sampleBooks(), model.CatalogQuery{SortBy: model.SortTitleAsc, PageSize: 100})

	if page.Books[0].Title != "1984" {
		t.Errorf("Expected 1984 first, got %q", page.Books[0].Title)
	}
	if page.Books[len(page.Books)-1].Title != "Sapiens" {
		t.Errorf("Expected Sapiens last, got %q", page.Books[len(page.Books)-1].Title)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	books := sampleBooks()
	firstID := books[0].ID

	Render(books, model.CatalogQuery{SortBy: model.SortYearAsc, PageSize: 100})

	if books[0].ID != firstID {
		t.Error("Render must not reorder its input")
	}
}

func TestPaginationCoversFilteredSetOnce(t *testing.T) {
	books := sampleBooks()
	seen := map[int]int{}

	page1 := Render(books, model.CatalogQuery{Page: 1, PageSize: 4})
	page2 := Render(books, model.CatalogQuery{Page: 2, PageSize: 4})

	if page1.TotalPages != 2 {
		t.Fatalf("Expected 2 pages, got %d", page1.TotalPages)
	}
	for _, b := range append(page1.Books, page2.Books...) {
		seen[b.ID]++
	}
	if len(seen) != len(books) {
		t.Errorf("Expected every book exactly once, got %v", seen)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Book %d appeared %d times", id, n)
		}
	}
}

func TestOutOfRangePageIsClamped(t *testing.T) {
	page := Render(sampleBooks(), model.CatalogQuery{Page: 99, PageSize: 4})

	if page.Page != page.TotalPages {
		t.Errorf("Expected page clamped to %d, got %d", page.TotalPages, page.Page)
	}
	if len(page.Books) == 0 {
		t.Error("Clamped page should not be empty")
	}

	page = Render(sampleBooks(), model.CatalogQuery{Page: -3, PageSize: 4})
	if page.Page != 1 {
		t.Errorf("Expected page clamped to 1, got %d", page.Page)
	}
}

func TestGenres(t *testing.T) {
	genres := Genres(sampleBooks())

	want := []string{"Clásico", "Distopía", "Fantasía", "Ficción", "Historia", "Terror"}
	if len(genres) != len(want) {
		t.Fatalf("Expected %d genres, got %v", len(want), genres)
	}
	for i, g := range want {
		if genres[i] != g {
			t.Errorf("Expected %q at %d, got %q", g, i, genres[i])
		}
	}
}
