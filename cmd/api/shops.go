package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateShopRequest struct {
	Name    string `json:"name" validate:"required"`
	OwnerID string `json:"owner_id" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type ChangeShopStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=pending approved rejected"`
	ApprovalNote string `json:"approval_note"`
}

// createShopHandler godoc
//
//	@Summary		Create shop
//	@Description	Registers a shop in pending state awaiting approval
//	@Tags			shops
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateShopRequest	true	"Shop"
//	@Success		201		{object}	domain.Shop
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/shops [post]
func (app *application) createShopHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateShopRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(req.OwnerID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	shop := &domain.Shop{
		Name:    req.Name,
		OwnerID: ownerID,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := app.shopRepo.Create(r.Context(), shop); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, shop); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listShopsHandler godoc
//
//	@Summary		List shops
//	@Description	Shop list with denormalized owner info, optionally filtered
//	@Tags			shops
//	@Produce		json
//	@Param			search	query		string	false	"Name search"
//	@Param			status	query		string	false	"Status filter"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(20)
//	@Success		200		{array}		domain.Shop
//	@Failure		500		{object}	map[string]string
//	@Router			/shops [get]
func (app *application) listShopsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.ShopFilter{
		Search: r.URL.Query().Get("search"),
		Status: domain.ShopStatus(r.URL.Query().Get("status")),
		Page:   intQuery(r, "page", 1),
		Limit:  intQuery(r, "limit", 20),
	}

	shops, err := app.shopRepo.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, shops); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getShopHandler godoc
//
//	@Summary		Get shop
//	@Tags			shops
//	@Produce		json
//	@Param			shop_id	path		string	true	"Shop ID"
//	@Success		200		{object}	domain.Shop
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/shops/{shop_id} [get]
func (app *application) getShopHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "shop_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shop, err := app.shopRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, shop); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateShopHandler godoc
//
//	@Summary		Update shop
//	@Tags			shops
//	@Accept			json
//	@Produce		json
//	@Param			shop_id	path		string				true	"Shop ID"
//	@Param			request	body		domain.ShopUpdate	true	"Fields to update"
//	@Success		200		{object}	domain.Shop
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/shops/{shop_id} [put]
func (app *application) updateShopHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "shop_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var update domain.ShopUpdate
	if err := readJson(w, r, &update); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shop, err := app.shopRepo.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, shop); err != nil {
		app.internalServerError(w, r, err)
	}
}

// changeShopStatusHandler godoc
//
//	@Summary		Change shop status
//	@Description	Approves or rejects a shop; approval also toggles activity
//	@Tags			shops
//	@Accept			json
//	@Produce		json
//	@Param			shop_id	path		string					true	"Shop ID"
//	@Param			request	body		ChangeShopStatusRequest	true	"New status"
//	@Success		200		{object}	domain.Shop
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/shops/{shop_id}/status [patch]
func (app *application) changeShopStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "shop_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req ChangeShopStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shop, err := app.shopRepo.ChangeStatus(r.Context(), id, domain.ShopStatus(req.Status), req.ApprovalNote)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, shop); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteShopHandler godoc
//
//	@Summary		Delete shop
//	@Tags			shops
//	@Param			shop_id	path	string	true	"Shop ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/shops/{shop_id} [delete]
func (app *application) deleteShopHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "shop_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.shopRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
