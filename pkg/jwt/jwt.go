package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clareleo/Huaixu/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

const issuer = "huaixu"

// Claims 自定义 JWT 声明
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
type Manager struct {
	secret         []byte
	accessTokenTTL time.Duration
	blacklistTTL   time.Duration
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:         []byte(cfg.JWTSecret),
		accessTokenTTL: cfg.AccessTokenTTL,
		blacklistTTL:   cfg.BlacklistTTL,
	}
}

// GenerateAccessToken 生成 Access Token
// accessTokenTTL 为 0 时不写入 exp，Token 不过期
func (m *Manager) GenerateAccessToken(userID uint, username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:       uuid.New().String(),
			IssuedAt: jwtv5.NewNumericDate(now),
			Issuer:   issuer,
		},
	}
	if m.accessTokenTTL > 0 {
		claims.ExpiresAt = jwtv5.NewNumericDate(now.Add(m.accessTokenTTL))
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并验证 Token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// RevokeTTL 计算登出时黑名单应保留的时长
// 有 exp 的 Token 取剩余有效期，不过期的 Token 取 blacklistTTL
func (m *Manager) RevokeTTL(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return m.blacklistTTL
	}
	return time.Until(claims.ExpiresAt.Time)
}
