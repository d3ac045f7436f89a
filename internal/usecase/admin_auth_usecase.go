package usecase

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	repo "cuddlecrafts/internal/repository"
)

// 管理者トークンの発行はmain側の実装（JWT）に任せる
type AdminTokenIssuer interface {
	Issue(now time.Time) (token string, expiresAt time.Time, err error)
}

// AdminAuthUsecase は共有シークレットのログインとパスワード変更。
// 平文保存はせず、bcryptハッシュと照合する。
type AdminAuthUsecase struct {
	credRepo   repo.AdminCredentialRepository
	issuer     AdminTokenIssuer
	bcryptCost int
}

// DI
func NewAdminAuthUsecase(credRepo repo.AdminCredentialRepository, issuer AdminTokenIssuer, bcryptCost int) *AdminAuthUsecase {
	return &AdminAuthUsecase{credRepo: credRepo, issuer: issuer, bcryptCost: bcryptCost}
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (u *AdminAuthUsecase) Login(ctx context.Context, password string) (LoginOutput, error) {
	if password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "password is required")
	}

	hash, err := u.credRepo.GetHash(ctx)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid password")
	}

	token, expiresAt, err := u.issuer.Issue(time.Now())
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return LoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// 現パスワードの確認つきで変更する。4文字未満は拒否。
func (u *AdminAuthUsecase) ChangePassword(ctx context.Context, current string, next string) error {
	if len(next) < 4 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 4 characters")
	}

	hash, err := u.credRepo.GetHash(ctx)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)) != nil {
		return NewHTTPError(http.StatusUnauthorized, "invalid password")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(next), u.bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	if err := u.credRepo.UpdateHash(ctx, string(newHash)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
