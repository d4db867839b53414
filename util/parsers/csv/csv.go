// Package csv reads and writes the catalog interchange format. Import
// expects a header row with at least title, author, year, pages, genre,
// rating, synopsis and isbn; export emits the same columns plus id,
// reviews_count and tags.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bookmate-app/bookmate/model"
	"github.com/bookmate-app/bookmate/util"
)

var requiredHeaders = []string{"title", "author", "year", "pages", "genre", "rating", "synopsis", "isbn"}

var exportHeaders = []string{"id", "title", "author", "year", "pages", "genre", "rating", "reviews_count", "isbn", "synopsis", "tags"}

// ParseCatalog decodes CSV rows into books. IDs are not taken from the
// file; the store assigns them on import. Malformed numeric fields degrade
// to defaults instead of rejecting the row.
func ParseCatalog(r io.Reader) ([]model.Book, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows may omit trailing optional columns such as tags.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}
	if len(records) < 2 {
		return nil, errors.New("the CSV file is empty")
	}

	headers := make([]string, 0, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		headers = append(headers, name)
		index[name] = i
	}

	missing := make([]string, 0)
	for _, want := range requiredHeaders {
		if _, ok := index[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	books := make([]model.Book, 0, len(records)-1)
	for _, row := range records[1:] {
		if isBlankRow(row) {
			continue
		}
		book := model.Book{
			Title:        field(row, "title"),
			Author:       field(row, "author"),
			Genre:        field(row, "genre"),
			Year:         util.AtoiOrDefault(field(row, "year"), time.Now().Year()),
			Pages:        util.AtoiOrDefault(field(row, "pages"), 0),
			Rating:       util.AtofOrDefault(field(row, "rating"), 0),
			ReviewsCount: util.AtoiOrDefault(field(row, "reviews_count"), 0),
			ISBN:         field(row, "isbn"),
			Synopsis:     field(row, "synopsis"),
			Tags:         splitTags(field(row, "tags")),
		}
		books = append(books, book)
	}

	if len(books) == 0 {
		return nil, errors.New("no valid books found in the CSV")
	}
	return books, nil
}

// FormatCatalog encodes the catalog. Tags are joined by ';' so the column
// round-trips through the ',' field separator; quoting is handled by
// encoding/csv.
func FormatCatalog(w io.Writer, books []model.Book) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeaders); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, book := range books {
		row := []string{
			strconv.Itoa(book.ID),
			book.Title,
			book.Author,
			strconv.Itoa(book.Year),
			strconv.Itoa(book.Pages),
			book.Genre,
			strconv.FormatFloat(book.Rating, 'f', -1, 64),
			strconv.Itoa(book.ReviewsCount),
			book.ISBN,
			book.Synopsis,
			strings.Join(book.Tags, ";"),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// splitTags accepts ';' or ',' separated tag lists.
func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	sep := ";"
	if !strings.Contains(raw, ";") {
		sep = ","
	}
	parts := strings.Split(raw, sep)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
