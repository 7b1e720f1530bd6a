package service

import (
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-tilt/infrastruture/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tokenizer := token.NewJwtService("secret", "vinom-tilt")
	auth, err := NewAuth(tokenizer, time.Minute)
	require.NoError(t, err)

	t.Run("Issue and Authenticate", func(t *testing.T) {
		id := uuid.New()
		tok, err := auth.Issue(id)
		require.NoError(t, err)

		got, err := auth.Authenticate(tok)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("Reject garbage", func(t *testing.T) {
		_, err := auth.Authenticate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidSessionToken)
	})

	t.Run("Reject token without session", func(t *testing.T) {
		tok, err := tokenizer.Generate(map[string]interface{}{"user_id": 1}, time.Minute)
		require.NoError(t, err)

		_, err = auth.Authenticate(tok)
		assert.ErrorIs(t, err, ErrInvalidSessionToken)
	})

	t.Run("Reject bad config", func(t *testing.T) {
		_, err := NewAuth(nil, time.Minute)
		assert.Error(t, err)
		_, err = NewAuth(tokenizer, 0)
		assert.Error(t, err)
	})
}
