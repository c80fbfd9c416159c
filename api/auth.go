package api

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bidhouse/auction"
)

const (
	AccessTokenCookie = "access_token"
)

var (
	ErrMissingToken = errors.New("access token not found")
)

// Claims 驗證服務簽發的 access token 內容，Subject 為使用者 id
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParsePublicKey 解析 PEM 格式的 Ed25519 公鑰
func ParsePublicKey(pemText string) (crypto.PublicKey, error) {
	const op = "ParsePublicKey"
	key, err := jwt.ParseEdPublicKeyFromPEM([]byte(pemText))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse public key, err=%w", op, err)
	}
	return key, nil
}

func ParseAndValidateJWT(tokenString string, publicKey crypto.PublicKey) (*Claims, error) {
	const op = "ParseJWT"
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%s: token is invalid", op)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("%s: token claims are invalid", op)
	}
	return claims, nil
}

// bearerToken 依序從 Authorization header 與 cookie 取得 token
func bearerToken(authorization, cookie *string) (string, error) {
	if authorization != nil && *authorization != "" {
		scheme, token, ok := strings.Cut(*authorization, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
	if cookie != nil && *cookie != "" {
		return *cookie, nil
	}
	return "", ErrMissingToken
}

// authenticate 驗證 access token 並取得呼叫者身份，失敗時回傳 KindUnauthenticated
func (impl *ServerImpl) authenticate(authorization, cookie *string) (auction.Identity, error) {
	tokenString, err := bearerToken(authorization, cookie)
	if err != nil {
		return auction.Identity{}, &auction.Error{Kind: auction.KindUnauthenticated, Message: "Unauthorized - Please log in", Err: err}
	}
	claims, err := ParseAndValidateJWT(tokenString, impl.publicKey)
	if err != nil {
		return auction.Identity{}, &auction.Error{Kind: auction.KindUnauthenticated, Message: "Invalid access token", Err: err}
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.Email == "" {
		return auction.Identity{}, &auction.Error{
			Kind:    auction.KindUnauthenticated,
			Message: "Invalid access token",
			Err:     fmt.Errorf("token without user id or email, subject=%q", claims.Subject),
		}
	}
	return auction.Identity{UserID: userID, Email: claims.Email}, nil
}

// authenticateWriter 驗證身份並確保使用者已建立，只有會寫入資料的操作需要
func (impl *ServerImpl) authenticateWriter(ctx context.Context, authorization, cookie *string) (auction.Identity, error) {
	identity, err := impl.authenticate(authorization, cookie)
	if err != nil {
		return auction.Identity{}, err
	}
	// 第一次看到的使用者在這裡建立
	if err := impl.service.EnsureUser(ctx, identity); err != nil {
		return auction.Identity{}, err
	}
	return identity, nil
}
