package http

import (
	"encoding/json"
	"net/http"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
)

type notifyEmailRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type notifyEmailResponse struct {
	Success bool `json:"success"`
}

func (s *Service) handleNotifyEmail(w http.ResponseWriter, r *http.Request) {
	var req notifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperr.NewBadRequest("No notification details provided"))
		return
	}

	if err := s.validate.Validate(req); err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := s.notifySvc.SendEmail(r.Context(), req.Email, req.Message); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, notifyEmailResponse{Success: true})
}
