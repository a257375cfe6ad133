package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/modernblog/internal/model"
)

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret-key-for-testing-purposes", 15*time.Minute)
}

func TestTokenService_Issue_Success(t *testing.T) {
	service := newTestTokenService()

	token, expiresAt, err := service.Issue(model.User{ID: "u1", Name: "Sarah", Email: "sarah@example.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))
	assert.True(t, expiresAt.Before(time.Now().Add(16*time.Minute)))
}

func TestTokenService_Parse_RestatesClaims(t *testing.T) {
	service := newTestTokenService()

	original := model.User{
		ID:        "u1",
		Name:      "Sarah Chen",
		Email:     "sarah@example.com",
		IsAdmin:   true,
		IsPremium: false,
	}
	token, _, err := service.Issue(original)
	require.NoError(t, err)

	user, err := service.Parse(token)

	require.NoError(t, err)
	assert.Equal(t, &original, user)
}

func TestTokenService_Parse_Expired(t *testing.T) {
	service := NewTokenService("test-secret", 1*time.Millisecond)

	token, _, err := service.Issue(model.User{ID: "u1"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	user, err := service.Parse(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, user)
}

func TestTokenService_Parse_Invalid(t *testing.T) {
	service := newTestTokenService()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"wrong secret", mustIssue(t, NewTokenService("other-secret", time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Parse(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, user)
		})
	}
}

func mustIssue(t *testing.T, service *TokenService) string {
	t.Helper()
	token, _, err := service.Issue(model.User{ID: "u1"})
	require.NoError(t, err)
	return token
}
