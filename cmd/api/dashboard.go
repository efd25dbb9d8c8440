package main

import (
	"net/http"
)

// dashboardOverviewHandler godoc
//
//	@Summary		Dashboard overview
//	@Description	Current-month metrics with month-over-month percentage change
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	service.Overview
//	@Failure		500	{object}	map[string]string
//	@Router			/dashboard/overview [get]
func (app *application) dashboardOverviewHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := app.dashboardService.Overview(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, overview); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recentActivityHandler godoc
//
//	@Summary		Recent activity feed
//	@Description	Newest orders and user registrations merged into one feed
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}		domain.Activity
//	@Failure		500	{object}	map[string]string
//	@Router			/dashboard/recent-activity [get]
func (app *application) recentActivityHandler(w http.ResponseWriter, r *http.Request) {
	activities, err := app.dashboardService.RecentActivity(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, activities); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recentOrdersHandler godoc
//
//	@Summary		Recent orders
//	@Description	Ten newest orders with denormalized customer info
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}		domain.RecentOrder
//	@Failure		500	{object}	map[string]string
//	@Router			/dashboard/recent-orders [get]
func (app *application) recentOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.dashboardService.RecentOrders(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// revenueChartHandler godoc
//
//	@Summary		Revenue chart
//	@Description	Revenue per bucket over the requested period (1w, 1m, 6m, 1y)
//	@Tags			dashboard
//	@Produce		json
//	@Param			period	query		string	false	"Period token"	default(1m)
//	@Success		200		{object}	report.Series
//	@Failure		500		{object}	map[string]string
//	@Router			/dashboard/charts/revenue [get]
func (app *application) revenueChartHandler(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	series, err := app.dashboardService.RevenueChart(r.Context(), period)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, series); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderStatusChartHandler godoc
//
//	@Summary		Order status chart
//	@Description	Order counts folded into display status categories
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	report.CountSeries
//	@Failure		500	{object}	map[string]string
//	@Router			/dashboard/charts/order-status [get]
func (app *application) orderStatusChartHandler(w http.ResponseWriter, r *http.Request) {
	series, err := app.dashboardService.OrderStatusChart(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, series); err != nil {
		app.internalServerError(w, r, err)
	}
}

// accountGrowthChartHandler godoc
//
//	@Summary		Account growth chart
//	@Description	New and active user counts per bucket over the requested period
//	@Tags			dashboard
//	@Produce		json
//	@Param			period	query		string	false	"Period token"	default(1m)
//	@Success		200		{object}	report.GrowthSeries
//	@Failure		500		{object}	map[string]string
//	@Router			/dashboard/charts/account-growth [get]
func (app *application) accountGrowthChartHandler(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	series, err := app.dashboardService.AccountGrowthChart(r.Context(), period)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, series); err != nil {
		app.internalServerError(w, r, err)
	}
}
