package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rsubandi/account-service/internal/application"
	"github.com/rsubandi/account-service/internal/domain/entity"
	"github.com/rsubandi/account-service/internal/interface/middleware"
	"github.com/rsubandi/account-service/pkg/helpers"
	"github.com/rsubandi/account-service/pkg/response"
	"github.com/rsubandi/account-service/pkg/validation"
)

type AccountHandler struct {
	Svc     *application.Service
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAccountHandler(svc *application.Service, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type regenerateOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// publicUser is the outward projection of an account. The password hash
// never leaves the service.
func publicUser(u *entity.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

// Register POST /accounts/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		ClientIP: middleware.ClientIP(c),
	})
	if err != nil {
		if errors.Is(err, application.ErrConflict) {
			response.Error(c, http.StatusConflict, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, publicUser(u), "registered, check your email for the verification code")
}

// Login POST /accounts/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, err.Error(), nil)
		case errors.Is(err, application.ErrEmailNotVerified):
			response.Error(c, http.StatusForbidden, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}
	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{"token": token}, "logged in successfully")
}

// VerifyOTP POST /accounts/verify-otp
func (h *AccountHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, application.ErrOTPInvalid):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("verify otp failed")
			response.Error(c, http.StatusInternalServerError, "verification failed", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "email verified successfully")
}

// RegenerateOTP POST /accounts/regenerate-otp
func (h *AccountHandler) RegenerateOTP(c *gin.Context) {
	var req regenerateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.RegenerateOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("regenerate otp failed")
		response.Error(c, http.StatusInternalServerError, "failed to regenerate OTP", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "OTP has been regenerated and sent successfully")
}

// Logout POST /accounts/logout
// Clears the cookie only; the token stays valid until it expires.
func (h *AccountHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out successfully")
}

// Me GET /accounts/me (behind cookie auth)
func (h *AccountHandler) Me(c *gin.Context) {
	email := c.GetString(middleware.CtxEmailKey)
	u, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("load profile failed")
		response.Error(c, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":             u.ID,
		"username":       u.Username,
		"email":          u.Email,
		"full_name":      u.FullName,
		"email_verified": u.EmailVerified,
		"role":           u.Role,
	}, "profile")
}
