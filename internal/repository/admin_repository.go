package repository

import "context"

// 管理者の共有シークレット（1行だけ）の永続化。
type AdminCredentialRepository interface {
	GetHash(ctx context.Context) (string, error)

	// 行が無いときだけhashで作成する。
	EnsureExists(ctx context.Context, hash string) error
	UpdateHash(ctx context.Context, hash string) error
}
