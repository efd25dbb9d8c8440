package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
)

type UpdateCartRequest struct {
	Items []domain.CartItem `json:"items" validate:"required,dive"`
}

// listCartsHandler godoc
//
//	@Summary		List carts
//	@Tags			carts
//	@Produce		json
//	@Success		200	{array}		domain.Cart
//	@Failure		500	{object}	map[string]string
//	@Router			/carts [get]
func (app *application) listCartsHandler(w http.ResponseWriter, r *http.Request) {
	carts, err := app.cartRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, carts); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartByUserHandler godoc
//
//	@Summary		Get a user's cart
//	@Tags			carts
//	@Produce		json
//	@Param			user_id	path		string	true	"User ID"
//	@Success		200		{object}	domain.Cart
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/carts/user/{user_id} [get]
func (app *application) getCartByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cart, err := app.cartRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, cart); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCartHandler godoc
//
//	@Summary		Replace cart items
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cart_id	path		string				true	"Cart ID"
//	@Param			request	body		UpdateCartRequest	true	"New items"
//	@Success		200		{object}	domain.Cart
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/carts/{cart_id} [put]
func (app *application) updateCartHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "cart_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateCartRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cart, err := app.cartRepo.Update(r.Context(), id, req.Items)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, cart); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCartHandler godoc
//
//	@Summary		Delete cart
//	@Tags			carts
//	@Param			cart_id	path	string	true	"Cart ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/carts/{cart_id} [delete]
func (app *application) deleteCartHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "cart_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.cartRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
