package handlers

import (
	"net/http"

	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	UserType        string `json:"user_type" binding:"required,oneof=student tutor"`
}

// SignUp регистрирует пользователя. Сессия откроется после
// подтверждения email по ссылке из письма.
func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), auth.SignUpInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		UserType:        model.UserType(req.UserType),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": user.ID,
		"email":   user.Email,
		"message": "Check your email!",
	})
}

// Verify подтверждает email по токену и отдаёт сессионный токен
func (h *Handler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter required"})
		return
	}

	sessionToken, identity, err := h.auth.Verify(c.Request.Context(), token)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": sessionToken,
		"user_id":      identity.UserID,
		"email":        identity.Email,
	})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn проверяет учётные данные и отдаёт сессионный токен
func (h *Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionToken, identity, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": sessionToken,
		"user_id":      identity.UserID,
		"email":        identity.Email,
	})
}

// SignOut закрывает сессию текущего пользователя
func (h *Handler) SignOut(c *gin.Context) {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	h.auth.SignOut(c.Request.Context(), identity)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
