package response

import "github.com/bookmate-app/bookmate/model"

// UserResponse strips credentials before a user record leaves the server.
type User struct {
	ID        int        `json:"id"`
	Nickname  string     `json:"nickname"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedTs int64      `json:"created_ts"`
}

func UserResponse(user *model.User) *User {
	return &User{
		ID:        user.ID,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Role:      user.Role,
		CreatedTs: user.CreatedTs,
	}
}
