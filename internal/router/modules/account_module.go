package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rsubandi/account-service/internal/interface/http"
	"github.com/rsubandi/account-service/internal/interface/middleware"
	"github.com/rsubandi/account-service/pkg/helpers"
)

// AccountModule wires the account lifecycle routes.
// Public: register, login, verify-otp, regenerate-otp, logout.
// Protected (session cookie): me.
type AccountModule struct {
	Handler *handlers.AccountHandler
	Tokens  *helpers.TokenIssuer
}

func NewAccountModule(h *handlers.AccountHandler, tokens *helpers.TokenIssuer) *AccountModule {
	return &AccountModule{Handler: h, Tokens: tokens}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	{
		accounts.POST("/register", m.Handler.Register)
		accounts.POST("/login", m.Handler.Login)
		accounts.POST("/verify-otp", m.Handler.VerifyOTP)
		accounts.POST("/regenerate-otp", m.Handler.RegenerateOTP)
		accounts.POST("/logout", m.Handler.Logout)

		auth := accounts.Group("/")
		auth.Use(middleware.Auth(m.Tokens))
		{
			auth.GET("/me", m.Handler.Me)
		}
	}
}
