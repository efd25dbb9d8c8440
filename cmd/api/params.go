package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid ID format")

func idFromURL(r *http.Request, param string) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return primitive.NilObjectID, ErrInvalidID
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return id, nil
}

// intQuery reads an integer query parameter; malformed or missing values
// silently fall back to the default.
func intQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
