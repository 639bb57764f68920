package controllers

import (
	"net/http"
	"strings"
	"testing"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserController_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"name":"Alice","email":"alice@example.com"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "name too short",
			body:       `{"name":"A","email":"alice@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "malformed email",
			body:       `{"name":"Alice","email":"alice-at-example"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"name":"Alice","email":"alice@example.com","role":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Alice","email":"alice@example.com"}`,
			svcErr:     domain.Conflict(domain.ReasonIntegrity, "could not execute statement"),
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeUserService{err: tt.svcErr}
			ctrl := NewUserController(testLogger, svc)

			rr := serve(ctrl.CreateUser, http.MethodPost, "/admin/users", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decode[UserDto](t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			require.Nil(t, env.Error)
			assert.Equal(t, UserDto{ID: 1, Name: "Alice", Email: "alice@example.com"}, env.Data)
		})
	}
}

func TestUserController_ListUsers(t *testing.T) {
	svc := &fakeUserService{users: []*domain.User{{ID: 3, Name: "Bob", Email: "bob@example.com"}}}
	ctrl := NewUserController(testLogger, svc)

	rr := serve(ctrl.ListUsers, http.MethodGet, "/admin/users?ids=3,4&ids=5&from=20&size=5", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{3, 4, 5}, svc.gotIDs)
	assert.Equal(t, domain.PaginationParams{From: 20, Size: 5}, svc.gotPage)
	env := decode[[]UserDto](t, rr)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "bob@example.com", env.Data[0].Email)

	rr = serve(ctrl.ListUsers, http.MethodGet, "/admin/users?ids=x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserController_DeleteUser(t *testing.T) {
	svc := &fakeUserService{}
	ctrl := NewUserController(testLogger, svc)

	rr := serve(ctrl.DeleteUser, http.MethodDelete, "/admin/users/42", "", "userId", "42")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(42), svc.deletedID)

	svc.err = domain.NotFoundf("User with id=%d was not found", 43)
	rr = serve(ctrl.DeleteUser, http.MethodDelete, "/admin/users/43", "", "userId", "43")
	require.Equal(t, http.StatusNotFound, rr.Code)
	env := decode[any](t, rr)
	assert.Equal(t, "User with id=43 was not found", env.Error.Message)
	assert.Equal(t, domain.ReasonNotFound, env.Error.Reason)

	rr = serve(ctrl.DeleteUser, http.MethodDelete, "/admin/users/abc", "", "userId", "abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCategoryController(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		svc := &fakeCategoryService{}
		rr := serve(NewCategoryController(testLogger, svc).CreateCategory, http.MethodPost, "/admin/categories", `{"name":"Concerts"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Concerts", svc.gotName)
		assert.Equal(t, CategoryDto{ID: 1, Name: "Concerts"}, decode[CategoryDto](t, rr).Data)
	})

	t.Run("name longer than 50 runes", func(t *testing.T) {
		svc := &fakeCategoryService{}
		long := `{"name":"` + strings.Repeat("я", 51) + `"}`
		rr := serve(NewCategoryController(testLogger, svc).CreateCategory, http.MethodPost, "/admin/categories", long)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, svc.gotName)
	})

	t.Run("update", func(t *testing.T) {
		svc := &fakeCategoryService{}
		rr := serve(NewCategoryController(testLogger, svc).UpdateCategory, http.MethodPatch, "/admin/categories/4", `{"name":"Talks"}`, "catId", "4")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, CategoryDto{ID: 4, Name: "Talks"}, decode[CategoryDto](t, rr).Data)
	})

	t.Run("delete non-empty category", func(t *testing.T) {
		svc := &fakeCategoryService{err: domain.Conflict(domain.ReasonConflict, "The category is not empty")}
		rr := serve(NewCategoryController(testLogger, svc).DeleteCategory, http.MethodDelete, "/admin/categories/1", "", "catId", "1")
		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "The category is not empty", decode[any](t, rr).Error.Message)
	})

	t.Run("get and list", func(t *testing.T) {
		svc := &fakeCategoryService{
			category: &domain.Category{ID: 2, Name: "Talks"},
			list:     []*domain.Category{{ID: 1, Name: "Concerts"}, {ID: 2, Name: "Talks"}},
		}
		ctrl := NewCategoryController(testLogger, svc)
		rr := serve(ctrl.GetCategory, http.MethodGet, "/categories/2", "", "catId", "2")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Talks", decode[CategoryDto](t, rr).Data.Name)

		rr = serve(ctrl.ListCategories, http.MethodGet, "/categories", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]CategoryDto](t, rr).Data, 2)
	})
}
