package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/repo"
)

// listNotificationsHandler godoc
//
//	@Summary		List notifications
//	@Description	Newest notifications first
//	@Tags			notifications
//	@Produce		json
//	@Param			limit	query		int	false	"Max notifications"	default(100)
//	@Success		200		{array}		domain.Notification
//	@Failure		500		{object}	map[string]string
//	@Router			/notifications [get]
func (app *application) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	notifications, err := app.notificationRepo.List(r.Context(), intQuery(r, "limit", 100))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, notifications); err != nil {
		app.internalServerError(w, r, err)
	}
}

// markNotificationReadHandler godoc
//
//	@Summary		Mark notification read
//	@Tags			notifications
//	@Produce		json
//	@Param			notification_id	path		string	true	"Notification ID"
//	@Success		200				{object}	domain.Notification
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Router			/notifications/{notification_id}/read [patch]
func (app *application) markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "notification_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	notification, err := app.notificationRepo.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, notification); err != nil {
		app.internalServerError(w, r, err)
	}
}

// clearNotificationsHandler godoc
//
//	@Summary		Clear notifications
//	@Tags			notifications
//	@Success		204
//	@Failure		500	{object}	map[string]string
//	@Router			/notifications [delete]
func (app *application) clearNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.notificationRepo.Clear(r.Context()); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
