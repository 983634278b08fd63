package user

import (
	"net/http"
	"time"

	"github.com/cinelog/cinelog/internal/pkg/web"
)

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

type userData struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Users []userData `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, newListUsersResponse(users))
}

func transformUser(u *User) userData {
	return userData{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified(),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func newListUsersResponse(users []User) *ListUsersResponse {
	data := make([]userData, 0, len(users))
	for i := range users {
		data = append(data, transformUser(&users[i]))
	}

	return &ListUsersResponse{
		Users: data,
	}
}
