package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/patricktheassistant/cyon-movie-night/registration"
)

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	SessionToken string `json:"sessionToken,omitempty"`
}

type RegisterResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketId string `json:"ticketId"`
}

func (a *API) postRegister(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	var body RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		logger.Error("Failed to decode registration body", "error", err)
		a.metrics.IncrementRegistrations("internal_error")

		respondJSON(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Internal server error",
		})
		return
	}

	ticketId, err := a.service.Register(r.Context(), registration.Request{
		Name:         body.Name,
		Email:        body.Email,
		SessionToken: body.SessionToken,
	})
	if err != nil {
		a.respondRegistrationError(w, r, err)
		return
	}

	logger.Info("Registration complete", "ticketId", ticketId)
	a.metrics.IncrementRegistrations("success")

	respondJSON(w, http.StatusOK, RegisterResponse{
		Success:  true,
		Message:  "Ticket registered and email sent",
		TicketId: ticketId,
	})
}

func (a *API) respondRegistrationError(w http.ResponseWriter, r *http.Request, err error) {
	logger := getLoggerFromCtx(r.Context())

	var registrationErr *registration.Error
	if !errors.As(err, &registrationErr) {
		logger.Error("Unexpected registration error", "error", err)
		a.metrics.IncrementRegistrations("internal_error")

		respondJSON(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Internal server error",
		})
		return
	}

	logger.Warn("Registration rejected", "reason", string(registrationErr.Reason), "error", err)
	a.metrics.IncrementRegistrations(strings.ToLower(string(registrationErr.Reason)))

	switch registrationErr.Reason {
	case registration.REASON_DUPLICATE_EMAIL:
		respondJSON(w, http.StatusConflict, Error{
			Code:    AlreadyRegistered,
			Message: registrationErr.Message,
		})
	case registration.REASON_SESSION_EXPIRED:
		respondJSON(w, http.StatusUnauthorized, Error{
			Code:    SessionExpired,
			Message: registrationErr.Message,
		})
	case registration.REASON_MISSING_NAME:
		respondJSON(w, http.StatusBadRequest, Error{
			Code:    MissingName,
			Message: registrationErr.Message,
		})
	case registration.REASON_MISSING_EMAIL:
		respondJSON(w, http.StatusBadRequest, Error{
			Code:    MissingEmail,
			Message: registrationErr.Message,
		})
	case registration.REASON_INVALID_EMAIL_FORMAT:
		respondJSON(w, http.StatusBadRequest, Error{
			Code:    InvalidEmailFormat,
			Message: registrationErr.Message,
		})
	case registration.REASON_DELIVERY_FAILED:
		respondJSON(w, http.StatusInternalServerError, Error{
			Code:    DeliveryFailed,
			Message: "Failed to send ticket email",
		})
	default:
		respondJSON(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Failed to register",
		})
	}
}
