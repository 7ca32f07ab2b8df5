package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/greeter/internal/greeting"
	"github.com/osse101/greeter/internal/logger"
)

// GreetingService is the part of greeting.Resolver the HTTP surface needs
type GreetingService interface {
	Resolve() greeting.Greeting
	CustomGreetings() map[string]string
	SetCustomGreeting(ctx context.Context, key, phrase string) error
	RemoveCustomGreeting(ctx context.Context, key string) error
	SetLocale(ctx context.Context, locale string) error
	Locale() string
	Locales() []string
}

// SetCustomGreetingRequest is the body of PUT /api/v1/greeting/custom
type SetCustomGreetingRequest struct {
	Key    string `json:"key" validate:"required,max=64"`
	Phrase string `json:"phrase" validate:"required,max=200"`
}

// SetLocaleRequest is the body of PUT /api/v1/greeting/locale
type SetLocaleRequest struct {
	Locale string `json:"locale" validate:"required,max=35"`
}

// LocalesResponse lists the active and the available locales
type LocalesResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

// CustomGreetingsResponse lists the active locale's custom greetings
type CustomGreetingsResponse struct {
	Locale    string            `json:"locale"`
	Greetings map[string]string `json:"greetings"`
}

// HandleGetGreeting returns the greeting for the current time
// @Summary Current greeting
// @Description Resolve the greeting for the current time in the active locale
// @Tags greeting
// @Produce json
// @Success 200 {object} greeting.Greeting
// @Router /api/v1/greeting [get]
func HandleGetGreeting(svc GreetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Resolve())
	}
}

// HandleGetCustomGreetings lists custom greetings of the active locale
// @Summary List custom greetings
// @Tags greeting
// @Produce json
// @Success 200 {object} CustomGreetingsResponse
// @Router /api/v1/greeting/custom [get]
func HandleGetCustomGreetings(svc GreetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CustomGreetingsResponse{
			Locale:    svc.Locale(),
			Greetings: svc.CustomGreetings(),
		})
	}
}

// HandleSetCustomGreeting stores a custom greeting for the active locale
// @Summary Set custom greeting
// @Description Key is "MM-DD", "day_N" (0 is Sunday) or a time slot name
// @Tags greeting
// @Accept json
// @Produce json
// @Param request body SetCustomGreetingRequest true "Custom greeting"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/greeting/custom [put]
func HandleSetCustomGreeting(svc GreetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetCustomGreetingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set custom greeting"); err != nil {
			return
		}

		if err := svc.SetCustomGreeting(r.Context(), req.Key, req.Phrase); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgSetCustomFailed, "key", req.Key, "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomGreetingSaved})
	}
}

// HandleRemoveCustomGreeting deletes the custom greeting named by the key path parameter
// @Summary Remove custom greeting
// @Tags greeting
// @Produce json
// @Param key path string true "Custom greeting key"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/greeting/custom/{key} [delete]
func HandleRemoveCustomGreeting(svc GreetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, PathParamKey)

		if err := svc.RemoveCustomGreeting(r.Context(), key); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgRemoveFailed, "key", key, "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomGreetingRemoved})
	}
}

// HandleGetLocales reports the active locale and every locale with a table
// @Summary List locales
// @Tags locale
// @Produce json
// @Success 200 {object} LocalesResponse
// @Router /api/v1/greeting/locales [get]
func HandleGetLocales(svc GreetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, LocalesResponse{
			Active:    svc.Locale(),
			Available: svc.Locales(),
		})
	}
}

// HandleSetLocale switches the active locale; unknown locales yield 404
// @Summary Switch locale
// @Tags locale
// @Accept json
// @Produce json
// @Param request body SetLocaleRequest true "Locale code"
// @Success 200 {object} LocalesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/greeting/locale [put]
func HandleSetLocale(svc GreetingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetLocaleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set locale"); err != nil {
			return
		}

		if err := svc.SetLocale(r.Context(), req.Locale); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgSetLocaleFailed, "locale", req.Locale, "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, LocalesResponse{
			Active:    svc.Locale(),
			Available: svc.Locales(),
		})
	}
}
