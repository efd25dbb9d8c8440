package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// createCategoryHandler godoc
//
//	@Summary		Create category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Category"
//	@Success		201		{object}	domain.Category
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &domain.Category{Name: req.Name}
	if err := app.categoryRepo.Create(r.Context(), category); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		domain.Category
//	@Failure		500	{object}	map[string]string
//	@Router			/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.categoryRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCategoryHandler godoc
//
//	@Summary		Rename category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category_id	path		string			true	"Category ID"
//	@Param			request		body		CategoryRequest	true	"New name"
//	@Success		200			{object}	domain.Category
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/categories/{category_id} [put]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req CategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.categoryRepo.Update(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete category
//	@Tags			categories
//	@Param			category_id	path	string	true	"Category ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/categories/{category_id} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.categoryRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
