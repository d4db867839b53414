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
)

// canAccessLibrary allows a user to touch their own library and an admin
// to touch anyone's.
func canAccessLibrary(r *http.Request, userID int) bool {
	if request.GetUserRole(r) == model.RoleAdmin {
		return true
	}
	return request.GetUserID(r) == userID
}

// listLibrary returns the user's entries resolved against the current
// catalog. Entries whose book was deleted are kept, with a nil book.
func (h *Handler) listLibrary(w http.ResponseWriter, r *http.Request) {
	userID := request.RouteIntParam(r, "userID")
	if !canAccessLibrary(r, userID) {
		response.Forbidden(w, r)
		return
	}

	entries, err := h.store.ListLibraryEntries(userID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	items := make([]model.LibraryItem, 0, len(entries))
	for _, entry := range entries {
		book, err := h.store.GetBook(entry.BookID)
		if err != nil {
			response.ServerError(w, r, err)
			return
		}
		items = append(items, model.LibraryItem{Entry: entry, Book: book})
	}

	response.OK(w, r, items)
}

func (h *Handler) libraryStats(w http.ResponseWriter, r *http.Request) {
	userID := request.RouteIntParam(r, "userID")
	if !canAccessLibrary(r, userID) {
		response.Forbidden(w, r)
		return
	}

	stats, err := h.store.GetLibraryStats(userID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, stats)
}

type libraryStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) addLibraryEntry(w http.ResponseWriter, r *http.Request) {
	userID := request.RouteIntParam(r, "userID")
	bookID := request.RouteIntParam(r, "bookID")
	if !canAccessLibrary(r, userID) {
		response.Forbidden(w, r)
		return
	}

	status := model.StatusToRead
	var req libraryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Status != "" {
		status = req.Status
	}
	if !model.IsValidStatus(status) {
		response.BadRequest(w, r, errors.Errorf("invalid reading status: %s", status))
		return
	}

	if !h.store.CheckBook(bookID) {
		response.NotFound(w, r)
		return
	}
	if h.store.HasLibraryEntry(userID, bookID) {
		response.BadRequest(w, r, errors.New("book is already in the library"))
		return
	}

	entry, err := h.store.AddLibraryEntry(userID, bookID, status)
	if err != nil {
		log.Error("Failed to add library entry",
			zap.Int("user_id", userID),
			zap.Int("book_id", bookID),
			zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.Created(w, r, entry)
}

func (h *Handler) updateLibraryStatus(w http.ResponseWriter, r *http.Request) {
	userID := request.RouteIntParam(r, "userID")
	bookID := request.RouteIntParam(r, "bookID")
	if !canAccessLibrary(r, userID) {
		response.Forbidden(w, r)
		return
	}

	var req libraryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if !model.IsValidStatus(req.Status) {
		response.BadRequest(w, r, errors.Errorf("invalid reading status: %s", req.Status))
		return
	}

	entry, err := h.store.UpdateLibraryStatus(userID, bookID, req.Status)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if entry == nil {
		response.NotFound(w, r)
		return
	}

	response.OK(w, r, entry)
}

func (h *Handler) removeLibraryEntry(w http.ResponseWriter, r *http.Request) {
	userID := request.RouteIntParam(r, "userID")
	bookID := request.RouteIntParam(r, "bookID")
	if !canAccessLibrary(r, userID) {
		response.Forbidden(w, r)
		return
	}

	removed, err := h.store.RemoveLibraryEntry(userID, bookID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if !removed {
		response.NotFound(w, r)
		return
	}

	response.NoContent(w, r)
}
