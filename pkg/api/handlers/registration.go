package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/bizmandi/storefront/pkg/api/errors"
	custommw "github.com/bizmandi/storefront/pkg/api/middleware"
	"github.com/bizmandi/storefront/pkg/auth"
	"github.com/bizmandi/storefront/pkg/domain"
	"github.com/bizmandi/storefront/pkg/metrics"
	"github.com/bizmandi/storefront/pkg/models"
	"github.com/bizmandi/storefront/pkg/registration"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
)

// RegistrationHandler exposes the seller signup flow over HTTP
type RegistrationHandler struct {
	service      *registration.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
	jwtSecret    string
	jwtExpiresHr int
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service *registration.Service, m *metrics.Metrics, jwtSecret string, jwtExpiresHr int) *RegistrationHandler {
	return &RegistrationHandler{
		service:      service,
		metrics:      m,
		validator:    validator.New(),
		jwtSecret:    jwtSecret,
		jwtExpiresHr: jwtExpiresHr,
	}
}

// RequestCode godoc
// @Summary Send a verification code to a mobile number
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body models.RequestCodeRequest true "Mobile number"
// @Success 200 {object} models.RequestCodeResponse
// @Failure 400 {object} models.ErrorResponse "Invalid mobile number"
// @Failure 429 {object} models.ErrorResponse "Resend cooldown active"
// @Router /registration/request-code [post]
func (h *RegistrationHandler) RequestCode(c echo.Context) error {
	var req models.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.service.RequestCode(ctx, req.Mobile, c.RealIP()); err != nil {
		return apierrors.DomainError(c, err)
	}

	h.metrics.RecordOTPSent()
	return c.JSON(http.StatusOK, models.RequestCodeResponse{
		Success:         true,
		ResendAvailable: h.service.ResendAvailableIn(ctx, req.Mobile),
	})
}

// VerifyCode godoc
// @Summary Verify the received code and unlock the profile wizard
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body models.VerifyCodeRequest true "Mobile number and code"
// @Success 200 {object} models.VerifyCodeResponse
// @Failure 400 {object} models.ErrorResponse "Wrong code"
// @Failure 429 {object} models.ErrorResponse "Too many attempts"
// @Router /registration/verify [post]
func (h *RegistrationHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	gate, err := h.service.VerifyCode(ctx, sessionID(c), req.Mobile, req.Code, c.RealIP())
	if err != nil {
		h.metrics.RecordOTPVerification(false)
		return apierrors.DomainError(c, err)
	}

	token, err := auth.GenerateSignupToken(gate.Mobile, gate.VerifiedAt, h.jwtSecret, h.jwtExpiresHr)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	h.metrics.RecordOTPVerification(true)
	return c.JSON(http.StatusOK, models.VerifyCodeResponse{Success: true, Token: token})
}

// SaveDraft godoc
// @Summary Save the wizard form as a resumable draft
// @Tags Registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProfilePayload true "Form snapshot"
// @Success 200 {object} models.DraftResponse
// @Failure 401 {object} models.ErrorResponse "Not verified"
// @Router /registration/draft [put]
func (h *RegistrationHandler) SaveDraft(c echo.Context) error {
	mobile := custommw.MobileFromContext(c)

	var req models.ProfilePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	// drafts are partial by nature; only shape-level constraints apply
	if err := h.validator.StructPartial(req, "Email", "Whatsapp", "CurrentStep"); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	p, err := h.service.SaveDraft(ctx, mobile, profileInput(req), c.RealIP())
	if err != nil {
		return apierrors.DomainError(c, err)
	}

	h.metrics.RecordDraftSaved()
	return c.JSON(http.StatusOK, models.DraftResponse{
		Success:     true,
		Status:      string(p.Status),
		CurrentStep: p.CurrentStep,
	})
}

// Resume godoc
// @Summary Fetch the stored draft to pre-fill the wizard
// @Tags Registration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} sellerprofile.LegacyRecord
// @Failure 404 {object} models.ErrorResponse "No draft"
// @Router /registration/draft [get]
func (h *RegistrationHandler) Resume(c echo.Context) error {
	mobile := custommw.MobileFromContext(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rec, err := h.service.Resume(ctx, mobile)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// Submit godoc
// @Summary Complete the registration
// @Description Creates the commerce account, signs in, and saves the
// final business profile. Safe to retry after a partial failure.
// @Tags Registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SubmitRequest true "Final form with credentials"
// @Success 200 {object} models.SubmitResponse
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 502 {object} models.ErrorResponse "Commerce backend failure"
// @Router /registration/submit [post]
func (h *RegistrationHandler) Submit(c echo.Context) error {
	mobile := custommw.MobileFromContext(c)

	var req models.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	// the submit sequence makes three upstream calls
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	p, err := h.service.Submit(ctx, sessionID(c), mobile, registration.SubmitInput{
		Profile:         profileInput(req.ProfilePayload),
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		IsSubscribed:    req.IsSubscribed,
	}, c.RealIP())
	if err != nil {
		h.metrics.RecordSubmitFailure(domain.GetErrorCode(err))
		return apierrors.DomainError(c, err)
	}

	h.metrics.RecordSellerRegistered()
	return c.JSON(http.StatusOK, models.SubmitResponse{
		Success: true,
		StoreID: p.StoreID,
		Status:  string(p.Status),
	})
}

func profileInput(req models.ProfilePayload) sellerprofile.ProfileInput {
	step := req.CurrentStep
	if step == 0 {
		step = 1
	}
	return sellerprofile.ProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Whatsapp:     req.Whatsapp,
		Pincode:      req.Pincode,
		PlotNumber:   req.PlotNumber,
		BuildingName: req.BuildingName,
		StreetName:   req.StreetName,
		Landmark:     req.Landmark,
		Area:         req.Area,
		City:         req.City,
		State:        req.State,
		Categories:   req.Categories,
		CurrentStep:  step,
	}
}
