package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
	"github.com/cinelog/cinelog/internal/user"
)

func TestHandler_ListUsers(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name      string
		listFunc  func(ctx context.Context) ([]user.User, error)
		code      int
		wantUsers int
	}{
		{
			name: "Two users",
			listFunc: func(ctx context.Context) ([]user.User, error) {
				return []user.User{
					{Model: model.Model{ID: "1"}, Name: "A", Email: "a@example.com", VerifiedAt: &now},
					{Model: model.Model{ID: "2"}, Name: "B", Email: "b@example.com"},
				}, nil
			},
			code:      http.StatusOK,
			wantUsers: 2,
		},
		{
			name: "Empty table",
			listFunc: func(ctx context.Context) ([]user.User, error) {
				return nil, nil
			},
			code: http.StatusOK,
		},
		{
			name: "Query failed",
			listFunc: func(ctx context.Context) ([]user.User, error) {
				return nil, errors.New("query failed")
			},
			code: http.StatusInternalServerError,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &user.StubService{ListUsersFunc: tc.listFunc}
			userHandler := user.NewHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/users", http.NoBody)
			rec := httptest.NewRecorder()
			userHandler.ListUsers(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}

			if tc.code != http.StatusOK {
				return
			}

			var apiRes web.OKResponse[*user.ListUsersResponse]
			if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
				t.Fatal(err)
			}

			if got := len(apiRes.Data.Users); got != tc.wantUsers {
				t.Errorf("len(apiRes.Data.Users) = %d, want: %d", got, tc.wantUsers)
			}
		})
	}
}
