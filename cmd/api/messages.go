package main

import (
	"errors"
	"net/http"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	SenderID       string `json:"sender_id" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

// createMessageHandler godoc
//
//	@Summary		Create message
//	@Tags			messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMessageRequest	true	"Message"
//	@Success		201		{object}	domain.Message
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/messages [post]
func (app *application) createMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	conversationID, err := primitive.ObjectIDFromHex(req.ConversationID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}
	senderID, err := primitive.ObjectIDFromHex(req.SenderID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	message := &domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        req.Content,
	}

	if err := app.messageRepo.Create(r.Context(), message); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, message); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMessagesHandler godoc
//
//	@Summary		List messages
//	@Description	Messages oldest first, optionally scoped to one conversation
//	@Tags			messages
//	@Produce		json
//	@Param			conversationId	query		string	false	"Conversation ID"
//	@Success		200				{array}		domain.Message
//	@Failure		400				{object}	map[string]string
//	@Failure		500				{object}	map[string]string
//	@Router			/messages [get]
func (app *application) listMessagesHandler(w http.ResponseWriter, r *http.Request) {
	var conversationID *primitive.ObjectID
	if raw := r.URL.Query().Get("conversationId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		conversationID = &id
	}

	messages, err := app.messageRepo.List(r.Context(), conversationID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, messages); err != nil {
		app.internalServerError(w, r, err)
	}
}

// markMessageReadHandler godoc
//
//	@Summary		Mark message read
//	@Tags			messages
//	@Produce		json
//	@Param			message_id	path		string	true	"Message ID"
//	@Success		200			{object}	domain.Message
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/messages/{message_id}/read [patch]
func (app *application) markMessageReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "message_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	message, err := app.messageRepo.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, message); err != nil {
		app.internalServerError(w, r, err)
	}
}
