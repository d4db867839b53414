package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookmate-app/bookmate/catalog"
	"github.com/bookmate-app/bookmate/config"
	"github.com/bookmate-app/bookmate/http/request"
	"github.com/bookmate-app/bookmate/http/response"
	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/model"
	"github.com/bookmate-app/bookmate/util/parsers/csv"
)

// listBooks renders one page of the filtered, sorted catalog. All query
// state lives in the URL; nothing about the listing is persisted.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.GetCatalog()
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	query := model.CatalogQuery{
		Search:     request.QueryStringParam(r, "search", ""),
		Genres:     request.QueryListParam(r, "genres"),
		YearRange:  request.QueryStringParam(r, "year_range", ""),
		PagesRange: request.QueryStringParam(r, "pages_range", ""),
		SortBy:     request.QueryStringParam(r, "sort_by", model.SortRatingDesc),
		Page:       request.QueryIntParam(r, "page", 1),
		PageSize:   request.QueryIntParam(r, "page_size", config.Opts.PageSize),
	}

	response.OK(w, r, catalog.Render(books, query))
}

func (h *Handler) listGenres(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.GetCatalog()
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, catalog.Genres(books))
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")
	book, err := h.store.GetBook(bookID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var req model.BookUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if req.Title == "" || req.Author == "" {
		response.BadRequest(w, r, errors.New("title and author are required"))
		return
	}

	book, err := h.store.AddBook(req.ToBook())
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	h.pushStatsJob(r)
	response.Created(w, r, book)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")

	var req model.BookUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if req.Title == "" || req.Author == "" {
		response.BadRequest(w, r, errors.New("title and author are required"))
		return
	}

	book, err := h.store.UpdateBook(bookID, req.ToBook())
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}

	h.pushStatsJob(r)
	response.OK(w, r, book)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")

	removed, err := h.store.RemoveBook(bookID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if !removed {
		response.NotFound(w, r)
		return
	}

	h.pushStatsJob(r)
	response.NoContent(w, r)
}

func (h *Handler) catalogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetCatalogStats()
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, stats)
}

func (h *Handler) resetCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ResetCatalog(); err != nil {
		response.ServerError(w, r, err)
		return
	}

	h.pushStatsJob(r)
	response.NoContent(w, r)
}

// importCatalog appends the rows of an uploaded CSV file to the catalog.
// The whole file is parsed before anything is written, so a malformed file
// imports nothing.
func (h *Handler) importCatalog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.Opts.MaxUploadSize<<20)
	if err := r.ParseMultipartForm(config.Opts.MaxUploadSize << 20); err != nil {
		response.BadRequest(w, r, errors.Wrap(err, "failed to parse upload"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, r, errors.Wrap(err, "missing file field"))
		return
	}
	defer file.Close()

	books, err := csv.ParseCatalog(file)
	if err != nil {
		response.BadRequest(w, r, err)
		return
	}

	imported, err := h.store.ImportBooks(books)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	log.Info("Catalog import finished",
		zap.Int("imported", imported),
		zap.Int("user_id", request.GetUserID(r)))

	h.pushStatsJob(r)
	response.OK(w, r, map[string]int{"imported": imported})
}

func (h *Handler) exportCatalog(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.GetCatalog()
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	filename := "catalog-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := csv.FormatCatalog(w, books); err != nil {
		log.Error("Failed to export catalog", zap.Error(err))
	}
}

// pushStatsJob schedules a background refresh of the catalog aggregates
// after a mutation.
func (h *Handler) pushStatsJob(r *http.Request) {
	if h.statsPool == nil {
		return
	}
	h.statsPool.Push(model.Job{
		UserID: request.GetUserID(r),
		Type:   model.JobTypeStatsRefresh,
		Status: model.JobStatusPending,
	})
}
