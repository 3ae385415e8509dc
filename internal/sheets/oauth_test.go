package sheets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	require.NoError(t, SaveToken(path, token))

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.Equal(t, "access", loaded.AccessToken)
}

func TestTokenSource(t *testing.T) {
	_, err := tokenSource(context.Background(), Config{ServiceAccountPath: filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorContains(t, err, "service account key")

	_, err = tokenSource(context.Background(), Config{
		ClientID:     "id",
		ClientSecret: "secret",
		TokenFile:    filepath.Join(t.TempDir(), "none.json"),
	})
	assert.ErrorContains(t, err, "token file unusable")

	ts, err := tokenSource(context.Background(), Config{ClientID: "id", ClientSecret: "secret", RefreshToken: "r"})
	require.NoError(t, err)
	assert.NotNil(t, ts)
}

func TestOAuth2ConfigScopes(t *testing.T) {
	cfg := OAuth2Config{ClientID: "id", ClientSecret: "secret"}.oauth2()

	assert.Equal(t, "http://localhost:8080/callback", cfg.RedirectURL)
	assert.Contains(t, cfg.Scopes[0], "spreadsheets.readonly")
}
