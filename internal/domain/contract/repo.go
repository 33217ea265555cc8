package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Settings() SettingsRepo
}

// SettingsRepo defines the contract for the key-value settings repository.
// Implementations must serialize concurrent writes to the same key so the
// last completed write wins.
type SettingsRepo interface {
	// Get returns found=false, and no error, when the key has never been written
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
