package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
)

type UserListResponse struct {
	Users []domain.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type ChangeUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user shop shipper customer"`
}

// listUsersHandler godoc
//
//	@Summary		List users
//	@Description	Paginated user list with optional name search
//	@Tags			users
//	@Produce		json
//	@Param			search	query		string	false	"Name search"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(20)
//	@Success		200		{object}	UserListResponse
//	@Failure		500		{object}	map[string]string
//	@Router			/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.UserFilter{
		Search: r.URL.Query().Get("search"),
		Page:   intQuery(r, "page", 1),
		Limit:  intQuery(r, "limit", 20),
	}

	users, total, err := app.userRepo.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := UserListResponse{
		Users: users,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getUserHandler godoc
//
//	@Summary		Get user
//	@Tags			users
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id} [get]
func (app *application) getUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateUserHandler godoc
//
//	@Summary		Update user
//	@Description	Updates profile fields; absent fields are left untouched
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string				true	"User ID"
//	@Param			request	body		domain.UserUpdate	true	"Fields to update"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id} [put]
func (app *application) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var update domain.UserUpdate
	if err := readJson(w, r, &update); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// changeUserRoleHandler godoc
//
//	@Summary		Change user role
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string					true	"User ID"
//	@Param			request	body		ChangeUserRoleRequest	true	"New role"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id}/role [patch]
func (app *application) changeUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req ChangeUserRoleRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.ChangeRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteUserHandler godoc
//
//	@Summary		Delete user
//	@Tags			users
//	@Param			user_id	path	string	true	"User ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/users/{user_id} [delete]
func (app *application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.userRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
