package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
)

type VoucherRequest struct {
	Code       string     `json:"code" validate:"required"`
	Discount   float64    `json:"discount" validate:"required,gt=0"`
	Type       string     `json:"type" validate:"required,oneof=percent fixed"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidTo    *time.Time `json:"valid_to,omitempty"`
	UsageLimit int        `json:"usage_limit" validate:"gte=0"`
}

func (req VoucherRequest) toDomain() *domain.Voucher {
	return &domain.Voucher{
		Code:       req.Code,
		Discount:   req.Discount,
		Type:       req.Type,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
		UsageLimit: req.UsageLimit,
	}
}

// createVoucherHandler godoc
//
//	@Summary		Create voucher
//	@Tags			vouchers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		VoucherRequest	true	"Voucher"
//	@Success		201		{object}	domain.Voucher
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/vouchers [post]
func (app *application) createVoucherHandler(w http.ResponseWriter, r *http.Request) {
	var req VoucherRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	voucher := req.toDomain()
	if err := app.voucherRepo.Create(r.Context(), voucher); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, voucher); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listVouchersHandler godoc
//
//	@Summary		List vouchers
//	@Tags			vouchers
//	@Produce		json
//	@Success		200	{array}		domain.Voucher
//	@Failure		500	{object}	map[string]string
//	@Router			/vouchers [get]
func (app *application) listVouchersHandler(w http.ResponseWriter, r *http.Request) {
	vouchers, err := app.voucherRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, vouchers); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateVoucherHandler godoc
//
//	@Summary		Update voucher
//	@Tags			vouchers
//	@Accept			json
//	@Produce		json
//	@Param			voucher_id	path		string			true	"Voucher ID"
//	@Param			request		body		VoucherRequest	true	"Voucher"
//	@Success		200			{object}	domain.Voucher
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/vouchers/{voucher_id} [put]
func (app *application) updateVoucherHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "voucher_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req VoucherRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	voucher, err := app.voucherRepo.Update(r.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, voucher); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteVoucherHandler godoc
//
//	@Summary		Delete voucher
//	@Tags			vouchers
//	@Param			voucher_id	path	string	true	"Voucher ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/vouchers/{voucher_id} [delete]
func (app *application) deleteVoucherHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "voucher_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.voucherRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
