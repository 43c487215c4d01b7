package auth

import (
	"strings"
	"testing"

	"healthhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(cost int) *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_SaltsEveryCall(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret!")
	require.NoError(t, err)

	assert.True(t, hasher.Check("s3cret!", hash))
	assert.False(t, hasher.Check("S3cret!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("s3cret!", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(&config.Config{}).(*bcryptHasher).cost)
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
