package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expenso/backend/internal/integration/persistence/model"
)

// fakeTokenRepository records calls for token service tests.
type fakeTokenRepository struct {
	savedTokens        []string
	invalidatedTokens  []string
	invalidatedUserIDs []uuid.UUID
}

func (f *fakeTokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	f.savedTokens = append(f.savedTokens, token)
	return nil
}

func (f *fakeTokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	for _, saved := range f.savedTokens {
		if saved == token {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidatedTokens = append(f.invalidatedTokens, token)
	return nil
}

func (f *fakeTokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	f.invalidatedUserIDs = append(f.invalidatedUserIDs, userID)
	return nil
}

func (f *fakeTokenRepository) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	return nil
}

func (f *fakeTokenRepository) GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	return nil, nil
}

func (f *fakeTokenRepository) InvalidatePasswordResetToken(ctx context.Context, token string) error {
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("generates and validates a token pair", func(t *testing.T) {
		repo := &fakeTokenRepository{}
		service := NewTokenService("test-secret", repo)

		pair, err := service.GenerateTokenPair(ctx, userID, "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected non-empty token pair")
		}
		if len(repo.savedTokens) != 1 {
			t.Fatalf("expected 1 saved refresh token, got %d", len(repo.savedTokens))
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error validating access token: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("expected email user@example.com, got %s", claims.Email)
		}
	})

	t.Run("rejects a refresh token presented as access token", func(t *testing.T) {
		repo := &fakeTokenRepository{}
		service := NewTokenService("test-secret", repo)

		pair, err := service.GenerateTokenPair(ctx, userID, "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected error validating refresh token as access token")
		}
	})

	t.Run("invalidates all tokens for a user", func(t *testing.T) {
		repo := &fakeTokenRepository{}
		service := NewTokenService("test-secret", repo)

		if err := service.InvalidateAllUserTokens(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.invalidatedUserIDs) != 1 {
			t.Fatalf("expected 1 invalidated user, got %d", len(repo.invalidatedUserIDs))
		}
		if repo.invalidatedUserIDs[0] != userID {
			t.Errorf("expected user ID %s, got %s", userID, repo.invalidatedUserIDs[0])
		}
	})
}
