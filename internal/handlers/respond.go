package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/SscSPs/expense_ledger_app/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse acknowledges an operation without a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

type errorKind struct {
	sentinel error
	status   int
	code     string
}

// errorKinds is checked in order; the first match wins.
var errorKinds = []errorKind{
	{apperrors.ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED"},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{apperrors.ErrMissingField, http.StatusBadRequest, "MISSING_FIELD"},
	{apperrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{apperrors.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
	{apperrors.ErrLockedForReview, http.StatusConflict, "LOCKED_FOR_REVIEW"},
	{apperrors.ErrInvalidBatchState, http.StatusConflict, "INVALID_BATCH_STATE"},
	{apperrors.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{apperrors.ErrConflict, http.StatusConflict, "CONFLICT"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{apperrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{apperrors.ErrStorage, http.StatusInternalServerError, "STORAGE_ERROR"},
}

// respondError maps a service error to its HTTP status. Server-side failures
// are logged and reported as fallback without leaking the cause.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	for _, k := range errorKinds {
		if !errors.Is(err, k.sentinel) {
			continue
		}
		if k.status >= http.StatusInternalServerError {
			logger.Error(fallback, slog.String("error", err.Error()), slog.String("code", k.code))
			c.JSON(k.status, ErrorResponse{Error: fallback, Code: k.code})
			return
		}
		body := ErrorResponse{Error: err.Error(), Code: k.code}
		var verrs apperrors.ValidationErrors
		var batch *apperrors.BatchStateError
		switch {
		case errors.As(err, &verrs):
			body.Details = verrs
		case errors.As(err, &batch):
			body.Details = gin.H{"required": batch.Required, "offending": batch.Offending}
		}
		logger.Warn(fallback, slog.String("error", err.Error()), slog.String("code", k.code))
		c.JSON(k.status, body)
		return
	}

	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Code: "INTERNAL"})
}

// respondBindError reports a request that gin could not bind or validate.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondError(c, validation.FromValidator(verrs), "Invalid request")
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	msg := "Invalid request format: " + err.Error()
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		msg = "Malformed JSON: " + err.Error()
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: "INVALID_REQUEST"})
}

// pathID returns the named path parameter when it is a UUID and replies 400 otherwise.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be a valid UUID", Code: "INVALID_ID"})
		return "", false
	}
	return id, true
}

// actorID returns the authenticated user id and replies 401 when it is missing.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: "UNAUTHORIZED"})
		return "", false
	}
	return userID, true
}
