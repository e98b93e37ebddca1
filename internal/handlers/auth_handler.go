package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericmelomp/PetFacil/internal/config"
	"github.com/ericmelomp/PetFacil/internal/httperr"
	"github.com/ericmelomp/PetFacil/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

const billingTokenTTL = 12 * time.Hour

type AuthHandler struct {
	config *config.Config

	// Hash calculado no boot; a senha em texto não circula depois
	// disso.
	billingHash []byte
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(cfg.BillingPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		log.Fatalf("failed to hash billing password: %v", err)
	}

	return &AuthHandler{
		config:      cfg,
		billingHash: hash,
	}
}

// --------- Requests ---------

type BillingLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// BillingLogin troca a senha do faturamento por um token com escopo
// "billing". É a versão servidor do gate que antes vivia embutido no
// front.
func (h *AuthHandler) BillingLogin(c *gin.Context) {
	var req BillingLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.billingHash, []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_password", "Senha incorreta.")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scope": middleware.BillingScope,
		"iat":   now.Unix(),
		"exp":   now.Add(billingTokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}
