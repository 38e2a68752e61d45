package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/models"
)

// -------- Request / Response Structs --------

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Map string to Role
func mapRole(role string) (models.Role, error) {
	switch strings.ToLower(role) {
	case string(models.RoleAdmin):
		return models.RoleAdmin, nil
	case string(models.RoleSeller):
		return models.RoleSeller, nil
	case string(models.RoleBuyer):
		return models.RoleBuyer, nil
	default:
		return "", fmt.Errorf("invalid role %q: %w", role, apperrors.ErrValidation)
	}
}

// -------- Core Logic --------

// Register creates a new user and issues a session token.
func Register(db *gorm.DB, tokens *TokenService, req RegisterRequest) (TokenResponse, error) {
	role, err := mapRole(req.Role)
	if err != nil {
		return TokenResponse{}, err
	}

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return TokenResponse{}, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenResponse{}, err
	}
	if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return TokenResponse{}, fmt.Errorf("username already taken: %w", apperrors.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenResponse{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return TokenResponse{}, err
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       req.Email,
		Username:    req.Username,
		FullName:    req.FullName,
		Password:    hash,
		Role:        role,
		IsActive:    true,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if err := db.Create(&user).Error; err != nil {
		return TokenResponse{}, err
	}

	token, err := tokens.Issue(user.ID, user.Role)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// Login verifies credentials and issues a session token.
func Login(db *gorm.DB, tokens *TokenService, req LoginRequest) (TokenResponse, error) {
	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenResponse{}, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthenticated)
		}
		return TokenResponse{}, err
	}
	if !CheckPassword(req.Password, user.Password) {
		return TokenResponse{}, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthenticated)
	}
	if !user.IsActive {
		return TokenResponse{}, apperrors.ErrAccountDeactivated
	}

	token, err := tokens.Issue(user.ID, user.Role)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// -------- Handlers --------

// POST /auth/register
func RegisterHandler(db *gorm.DB, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		resp, err := Register(db, tokens, req)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		resp, err := Login(db, tokens, req)
		if err != nil {
			c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
