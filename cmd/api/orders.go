package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"github.com/Noir-tsu/4Foods-admin/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderListResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

type UpdateOrderStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=pending approved processing shipped completed cancelled rejected"`
	ActorID string `json:"actor_id,omitempty"`
}

type RejectOrderRequest struct {
	Reason  string `json:"reason" validate:"required"`
	ActorID string `json:"actor_id,omitempty"`
}

type ApproveOrderRequest struct {
	ActorID string `json:"actor_id,omitempty"`
}

// actorID resolves the acting admin from an optional request field. With no
// auth layer in front of the API the caller identifies itself.
func actorID(raw string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Paginated order list, optionally filtered by status
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"Order status filter"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(20)
//	@Param			sortBy	query		string	false	"Sort field"	default(created_at)
//	@Success		200		{object}	OrderListResponse
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.OrderFilter{
		Status:    domain.OrderStatus(r.URL.Query().Get("status")),
		Page:      intQuery(r, "page", 1),
		Limit:     intQuery(r, "limit", 20),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	orders, total, err := app.orderRepo.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listPendingOrdersHandler godoc
//
//	@Summary		List pending orders
//	@Description	Orders awaiting approval, oldest first
//	@Tags			orders
//	@Produce		json
//	@Param			limit	query		int	false	"Max orders"	default(50)
//	@Success		200		{array}		domain.Order
//	@Failure		500		{object}	map[string]string
//	@Router			/orders/pending [get]
func (app *application) listPendingOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderRepo.ListPending(r.Context(), intQuery(r, "limit", 50))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string						true	"Order ID"
//	@Param			request		body		UpdateOrderStatusRequest	true	"New status"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status), actorID(req.ActorID))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// approveOrderHandler godoc
//
//	@Summary		Approve order
//	@Description	Moves a pending order to approved and queues a notification
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string				true	"Order ID"
//	@Param			request		body		ApproveOrderRequest	false	"Acting admin"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/orders/{order_id}/approve [post]
func (app *application) approveOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// body is optional
	var req ApproveOrderRequest
	_ = readJson(w, r, &req)

	order, err := app.orderService.Approve(r.Context(), id, actorID(req.ActorID))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			app.notFoundError(w, r, err)
		case errors.Is(err, service.ErrOrderNotPending):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// rejectOrderHandler godoc
//
//	@Summary		Reject order
//	@Description	Marks an order rejected with a reason, from any state
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string				true	"Order ID"
//	@Param			request		body		RejectOrderRequest	true	"Rejection reason"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id}/reject [post]
func (app *application) rejectOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req RejectOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.Reject(r.Context(), id, actorID(req.ActorID), req.Reason)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteOrderHandler godoc
//
//	@Summary		Delete order
//	@Tags			orders
//	@Param			order_id	path	string	true	"Order ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/orders/{order_id} [delete]
func (app *application) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.orderService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
