package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookUpsertRequest is the admin create/update payload. Numeric fields are
// declared loosely typed on purpose: malformed numeric input degrades to a
// default instead of rejecting the operation, matching the catalog's
// silent-default policy.
type BookUpsertRequest struct {
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Genre        string   `json:"genre"`
	Year         any      `json:"year"`
	Pages        any      `json:"pages"`
	Rating       any      `json:"rating"`
	ReviewsCount any      `json:"reviews_count"`
	ISBN         string   `json:"isbn"`
	Synopsis     string   `json:"synopsis"`
	Tags         []string `json:"tags"`
}

// ToBook coerces the request into a Book. A missing or malformed year
// defaults to the current year; the other numerics default to zero.
func (r *BookUpsertRequest) ToBook() Book {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Book{
		Title:        strings.TrimSpace(r.Title),
		Author:       strings.TrimSpace(r.Author),
		Genre:        strings.TrimSpace(r.Genre),
		Year:         coerceInt(r.Year, time.Now().Year()),
		Pages:        coerceInt(r.Pages, 0),
		Rating:       coerceFloat(r.Rating, 0),
		ReviewsCount: coerceInt(r.ReviewsCount, 0),
		ISBN:         strings.TrimSpace(r.ISBN),
		Synopsis:     r.Synopsis,
		Tags:         tags,
	}
}

func coerceInt(v any, def int) int {
	switch value := v.(type) {
	case nil:
		return def
	case float64:
		return int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return def
		}
		return parsed
	default:
		parsed, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(value)))
		if err != nil {
			return def
		}
		return parsed
	}
}

func coerceFloat(v any, def float64) float64 {
	switch value := v.(type) {
	case nil:
		return def
	case float64:
		return value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return def
		}
		return parsed
	default:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprint(value)), 64)
		if err != nil {
			return def
		}
		return parsed
	}
}
