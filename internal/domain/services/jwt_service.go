package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(userID, userName string, userLevel int) (string, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	LoginCliente(cpf, senha string) (*LoginResult, error)
	LoginAdmin(cpf, senha string) (*LoginResult, error)
}

// JWTClaims carried in every issued token. UserLevel drives the
// permission gates: 1 cliente, 2 síndico, 3 porteiro, 5 super-admin.
type JWTClaims struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserLevel int    `json:"userLevel"`
	jwt.RegisteredClaims
}

// LoginResult is the body returned by the login endpoints
type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Nivel int    `json:"nivel"`
}

// JWTService issues and validates HS256 tokens
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    cfg.JWTIssuer,
		DB:        db,
	}
}

// GenerateToken signs a token valid for one hour
func (s *JWTService) GenerateToken(userID, userName string, userLevel int) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:    userID,
		UserName:  userName,
		UserLevel: userLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ExtractClaims parses and validates a token string
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// LoginCliente authenticates a resident by CPF. Disabled accounts are
// rejected with the same message as bad credentials on purpose.
func (s *JWTService) LoginCliente(cpf, senha string) (*LoginResult, error) {
	var cliente models.Cliente
	if err := s.DB.Where("cpf = ?", cpf).First(&cliente).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalido
		}
		return nil, err
	}
	if !cliente.Ativo {
		return nil, ErrCredenciaisInvalido
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cliente.Senha), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalido
	}

	token, err := s.GenerateToken(cliente.ID, cliente.Nome, 1)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ID: cliente.ID, Nome: cliente.Nome, Nivel: 1}, nil
}

// LoginAdmin authenticates síndicos, porteiros and super-admins
func (s *JWTService) LoginAdmin(cpf, senha string) (*LoginResult, error) {
	var admin models.Admin
	if err := s.DB.Where("cpf = ?", cpf).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalido
		}
		return nil, err
	}
	if !admin.Ativo {
		return nil, ErrCredenciaisInvalido
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Senha), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalido
	}

	token, err := s.GenerateToken(admin.ID, admin.Nome, admin.Nivel)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ID: admin.ID, Nome: admin.Nome, Nivel: admin.Nivel}, nil
}
