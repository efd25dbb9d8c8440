package main

import (
	"net/http"

	"golang.org/x/sync/errgroup"
)

type StatsCountsResponse struct {
	Orders   int64 `json:"orders"`
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
	Shops    int64 `json:"shops"`
}

// statsCountsHandler godoc
//
//	@Summary		Entity counts
//	@Description	Total document counts per collection
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	StatsCountsResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/stats/counts [get]
func (app *application) statsCountsHandler(w http.ResponseWriter, r *http.Request) {
	var response StatsCountsResponse

	g, gctx := errgroup.WithContext(r.Context())

	g.Go(func() (err error) {
		response.Orders, err = app.orderRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		response.Users, err = app.userRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		response.Products, err = app.productRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		response.Shops, err = app.shopRepo.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
