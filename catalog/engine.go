// Package catalog implements the filter/sort/paginate pipeline over a
// catalog snapshot. Render is pure: it never mutates its input and does no
// I/O, so the same snapshot and query always produce the same page.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bookmate-app/bookmate/model"
)

// DefaultPageSize is used when the query does not supply one.
const DefaultPageSize = 9

// Render applies text search, genre, year and page-count filters, then a
// stable sort and 1-based pagination. An out-of-range page is clamped, never
// an error.
func Render(books []model.Book, query model.CatalogQuery) model.CatalogPage {
	matched := filterBooks(books, query)
	matched = sortBooks(matched, query.SortBy)

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalMatched := len(matched)
	totalPages := (totalMatched + pageSize - 1) / pageSize

	page := query.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	if totalMatched == 0 {
		return model.CatalogPage{
			Books:        []model.Book{},
			TotalMatched: 0,
			TotalPages:   0,
			Page:         page,
			PageSize:     pageSize,
		}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > totalMatched {
		end = totalMatched
	}

	return model.CatalogPage{
		Books:        matched[start:end],
		TotalMatched: totalMatched,
		TotalPages:   totalPages,
		Page:         page,
		PageSize:     pageSize,
	}
}

func filterBooks(books []model.Book, query model.CatalogQuery) []model.Book {
	matched := make([]model.Book, 0, len(books))

	term := Fold(strings.TrimSpace(query.Search))
	selected := query.Genres

	for _, book := range books {
		if term != "" && !matchesSearch(&book, term) {
			continue
		}
		if len(selected) > 0 && !matchesGenres(&book, selected) {
			continue
		}
		if query.YearRange != "" && !matchesYearRange(book.Year, query.YearRange) {
			continue
		}
		if query.PagesRange != "" && !matchesPagesRange(book.Pages, query.PagesRange) {
			continue
		}
		matched = append(matched, book)
	}
	return matched
}

// matchesSearch checks the folded term against title, author, genre,
// synopsis and the tags joined by spaces.
func matchesSearch(book *model.Book, term string) bool {
	if strings.Contains(Fold(book.Title), term) {
		return true
	}
	if strings.Contains(Fold(book.Author), term) {
		return true
	}
	if strings.Contains(Fold(book.Genre), term) {
		return true
	}
	if len(book.Tags) > 0 && strings.Contains(Fold(strings.Join(book.Tags, " ")), term) {
		return true
	}
	return strings.Contains(Fold(book.Synopsis), term)
}

// matchesGenres splits the book's comma-joined genre field and keeps the
// book if any selected genre is present (OR semantics).
func matchesGenres(book *model.Book, selected []string) bool {
	bookGenres := book.Genres()
	for _, want := range selected {
		for _, got := range bookGenres {
			if got == want {
				return true
			}
		}
	}
	return false
}

func matchesYearRange(year int, yearRange string) bool {
	switch yearRange {
	case model.YearRange2020s:
		return year >= 2020 && year <= 2024
	case model.YearRange2010s:
		return year >= 2010 && year <= 2019
	case model.YearRange2000s:
		return year >= 2000 && year <= 2009
	case model.YearRange1990s:
		return year >= 1990 && year <= 1999
	case model.YearRange1900s:
		return year >= 1900 && year <= 1989
	case model.YearRangeAncient:
		return year < 1900
	default:
		return true
	}
}

func matchesPagesRange(pages int, pagesRange string) bool {
	switch pagesRange {
	case model.PagesRangeShort:
		return pages < 200
	case model.PagesRangeMedium:
		return pages >= 200 && pages <= 400
	case model.PagesRangeLong:
		return pages >= 400 && pages <= 600
	case model.PagesRangeEpic:
		return pages > 600
	default:
		return true
	}
}

// sortBooks returns a sorted copy. The sort must be stable so that ties
// keep their relative input order and pagination stays deterministic.
func sortBooks(books []model.Book, sortBy string) []model.Book {
	sorted := make([]model.Book, len(books))
	copy(sorted, books)

	switch sortBy {
	case model.SortRatingAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case model.SortYearDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year > sorted[j].Year })
	case model.SortYearAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })
	case model.SortTitleAsc:
		collator := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case model.SortTitleDesc:
		collator := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Title, sorted[j].Title) > 0
		})
	case model.SortRatingDesc:
		fallthrough
	default:
		// Rating descending is the default ordering.
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}
	return sorted
}

// newCollator builds a locale-aware collator for title comparison. A new
// one per sort because collators are not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// Genres lists every distinct genre across the catalog, split out of the
// comma-joined field and sorted, for filter UIs.
func Genres(books []model.Book) []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, book := range books {
		for _, g := range book.Genres() {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	sort.Strings(genres)
	return genres
}
