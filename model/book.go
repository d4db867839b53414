package model //import "github.com/bookmate-app/bookmate/model"

import "strings"

// Book is a single catalog record. The genre field may hold several
// comma-joined genres ("Ficción, Terror"); use Genres to get the split
// parts. Books are replaced whole, never mutated field by field.
type Book struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Genre        string   `json:"genre"`
	Year         int      `json:"year"`
	Pages        int      `json:"pages"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	ISBN         string   `json:"isbn"`
	Synopsis     string   `json:"synopsis"`
	Tags         []string `json:"tags"`
}

// Genres splits the comma-joined genre field into trimmed parts.
func (b *Book) Genres() []string {
	if b.Genre == "" {
		return nil
	}
	parts := strings.Split(b.Genre, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// CatalogQuery is the ephemeral query state of a catalog listing.
// It is owned by the caller and never persisted.
type CatalogQuery struct {
	Search     string   `json:"search"`
	Genres     []string `json:"genres"`
	YearRange  string   `json:"year_range"`
	PagesRange string   `json:"pages_range"`
	SortBy     string   `json:"sort_by"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

// CatalogPage is one rendered page of a filtered, sorted catalog.
type CatalogPage struct {
	Books        []Book `json:"books"`
	TotalMatched int    `json:"total_matched"`
	TotalPages   int    `json:"total_pages"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

// Sort keys accepted by CatalogQuery.SortBy.
const (
	SortRatingDesc = "rating-desc"
	SortRatingAsc  = "rating-asc"
	SortYearDesc   = "year-desc"
	SortYearAsc    = "year-asc"
	SortTitleAsc   = "title-asc"
	SortTitleDesc  = "title-desc"
)

// Year range buckets accepted by CatalogQuery.YearRange.
const (
	YearRange2020s   = "2020-2024"
	YearRange2010s   = "2010-2019"
	YearRange2000s   = "2000-2009"
	YearRange1990s   = "1990-1999"
	YearRange1900s   = "1900-1989"
	YearRangeAncient = "ancient"
)

// Page count buckets accepted by CatalogQuery.PagesRange.
const (
	PagesRangeShort  = "0-200"
	PagesRangeMedium = "200-400"
	PagesRangeLong   = "400-600"
	PagesRangeEpic   = "600+"
)

// CatalogStats are aggregate figures over the active catalog snapshot.
type CatalogStats struct {
	Total        int            `json:"total"`
	ByGenre      map[string]int `json:"by_genre"`
	AvgRating    float64        `json:"avg_rating"`
	TotalReviews int            `json:"total_reviews"`
}
