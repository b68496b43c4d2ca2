package v1

import (
	"net/http"
	"time"

	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/delivery/http/response"
	"placement-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC     domain.AuthUsecase
	production bool
}

func NewAuthHandler(public *gin.RouterGroup, authMW gin.HandlerFunc, authUC domain.AuthUsecase, production bool) {
	handler := &AuthHandler{authUC: authUC, production: production}

	auth := public.Group("/auth")
	{
		auth.POST("/signup", handler.Signup)
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/forgot-password", handler.ForgotPassword)
		auth.POST("/reset-password", handler.ResetPassword)
		auth.GET("/verify", authMW, handler.Verify)
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Remember bool   `json:"remember"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary      Create an account
// @Description  Registers a student or recruiter and sets the token cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignupRequest  true  "Credentials"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Signup(c.Request.Context(), domain.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Remember: req.Remember,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setTokenCookie(c, result.Token, req.Remember)
	response.Success(c, http.StatusCreated, "Sign-up successful", result)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), domain.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		Remember:  req.Remember,
		ClientIP:  c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setTokenCookie(c, result.Token, req.Remember)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.writeCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Always answers 200 so account existence is not revealed
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ForgotPasswordRequest  true  "Email"
// @Success      200   {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "If an account exists for that email, a reset link has been sent", nil)
}

// ResetPassword godoc
// @Summary      Reset a password with a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "Token and new password"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password has been reset", nil)
}

// Verify godoc
// @Summary      Verify the current token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/verify [get]
// @Security     CookieAuth
func (h *AuthHandler) Verify(c *gin.Context) {
	response.Success(c, http.StatusOK, "Token is valid", gin.H{"user": middleware.CurrentIdentity(c)})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, remember bool) {
	h.writeCookie(c, token, int(domain.TokenTTL(remember)/time.Second))
}

// Production frontends live on another site, so the cookie must be SameSite=None and Secure there.
func (h *AuthHandler) writeCookie(c *gin.Context, value string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.production, true)
}
