package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type OAuthController struct {
	Logger  *slog.Logger
	Service domain.OAuthService
}

func NewOAuthController(logger *slog.Logger, svc domain.OAuthService) *OAuthController {
	return &OAuthController{
		Logger:  logger,
		Service: svc,
	}
}

// OAuthRequest is the request body for POST /oauth/{google,facebook}.
type OAuthRequest struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Platform    string `json:"platform"`
}

// Validate implements helpers.Validator.
func (r *OAuthRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.AccessToken) == "" {
		errs = append(errs, "access_token is required")
	}
	if r.Platform == "" {
		r.Platform = "web"
	}
	if r.Platform != "web" && r.Platform != "android" {
		errs = append(errs, "platform must be web or android")
	}
	return errs
}

// OAuthGoogle godoc
// @Summary Log in with a Google access token
// @Tags oauth
// @Accept json
// @Produce json
// @Param body body controllers.OAuthRequest true "Access token"
// @Success 200 {object} helpers.APIResponse "data contains user, token, and created flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid provider token)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /oauth/google [post]
func (c *OAuthController) OAuthGoogle(w http.ResponseWriter, r *http.Request) {
	c.authenticate(w, r, domain.ProviderGoogle)
}

// OAuthFacebook godoc
// @Summary Log in with a Facebook access token
// @Tags oauth
// @Accept json
// @Produce json
// @Param body body controllers.OAuthRequest true "Access token"
// @Success 200 {object} helpers.APIResponse "data contains user, token, and created flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid provider token)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /oauth/facebook [post]
func (c *OAuthController) OAuthFacebook(w http.ResponseWriter, r *http.Request) {
	c.authenticate(w, r, domain.ProviderFacebook)
}

func (c *OAuthController) authenticate(w http.ResponseWriter, r *http.Request, provider string) {
	var req OAuthRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Service.Authenticate(r.Context(), provider, req.AccessToken, req.Role, req.Platform)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		// Provider rejections surface as 400 like the rest of the token errors.
		c.Logger.WarnContext(r.Context(), "oauth failed", "provider", provider, "err", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
