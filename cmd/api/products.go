package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateProductRequest struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	CategoryID  string   `json:"category_id,omitempty"`
	ShopID      string   `json:"shop_id,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

type ChangeProductStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

// createProductHandler godoc
//
//	@Summary		Create product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product"
//	@Success		201		{object}	domain.Product
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product := &domain.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Status:      domain.ProductStatusDraft,
		Images:      req.Images,
	}

	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		product.CategoryID = &categoryID
	}
	if req.ShopID != "" {
		shopID, err := primitive.ObjectIDFromHex(req.ShopID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		product.ShopID = &shopID
	}

	if err := app.productRepo.Create(r.Context(), product); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Tags			products
//	@Produce		json
//	@Param			search	query		string	false	"Name search"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(20)
//	@Success		200		{object}	ProductListResponse
//	@Failure		500		{object}	map[string]string
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.ProductFilter{
		Search: r.URL.Query().Get("search"),
		Page:   intQuery(r, "page", 1),
		Limit:  intQuery(r, "limit", 20),
	}

	products, total, err := app.productRepo.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := ProductListResponse{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductHandler godoc
//
//	@Summary		Get product
//	@Tags			products
//	@Produce		json
//	@Param			product_id	path		string	true	"Product ID"
//	@Success		200			{object}	domain.Product
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/products/{product_id} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "product_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProductHandler godoc
//
//	@Summary		Update product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product_id	path		string					true	"Product ID"
//	@Param			request		body		domain.ProductUpdate	true	"Fields to update"
//	@Success		200			{object}	domain.Product
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/products/{product_id} [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "product_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var update domain.ProductUpdate
	if err := readJson(w, r, &update); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.productRepo.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// changeProductStatusHandler godoc
//
//	@Summary		Change product status
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product_id	path		string						true	"Product ID"
//	@Param			request		body		ChangeProductStatusRequest	true	"New status"
//	@Success		200			{object}	domain.Product
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/products/{product_id}/status [patch]
func (app *application) changeProductStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "product_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req ChangeProductStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.productRepo.ChangeStatus(r.Context(), id, domain.ProductStatus(req.Status))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteProductHandler godoc
//
//	@Summary		Delete product
//	@Tags			products
//	@Param			product_id	path	string	true	"Product ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/products/{product_id} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "product_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
