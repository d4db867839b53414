package v1

import (
	"net/http"

	"github.com/bookmate-app/bookmate/http/response"
	"github.com/bookmate-app/bookmate/model"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(&model.FindUser{})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	list := make([]*response.User, 0, len(users))
	for _, user := range users {
		list = append(list, response.UserResponse(user))
	}
	response.OK(w, r, list)
}
