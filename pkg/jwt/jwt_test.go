package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	t.Run("签发后可解析", func(t *testing.T) {
		token, expiresIn, err := m.GenerateToken("alice", "admin")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(3600), expiresIn)

		claims, err := m.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Name)
		assert.Equal(t, "admin", claims.Group)
		assert.Equal(t, "mybooks", claims.Issuer)
	})

	t.Run("篡改Token解析失败", func(t *testing.T) {
		token, _, err := m.GenerateToken("alice", "user")
		require.NoError(t, err)

		_, err = m.ParseToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("密钥不匹配解析失败", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, _, err := other.GenerateToken("alice", "user")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("过期Token解析失败", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, _, err := expired.GenerateToken("alice", "user")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("每次签发的Token不同", func(t *testing.T) {
		first, _, err := m.GenerateToken("alice", "user")
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond) // iat精度为秒
		second, _, err := m.GenerateToken("alice", "user")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestExpire(t *testing.T) {
	m := NewManager("test-secret", 24*time.Hour)
	assert.Equal(t, 24*time.Hour, m.Expire())
}
