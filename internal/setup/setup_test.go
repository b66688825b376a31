package setup

import (
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/kzgist/internal/curve"
	"github.com/Han-16/kzgist/internal/field"
)

func TestGenerateMatchesRepeatedMultiplication(t *testing.T) {
	secret, err := SecretFromString("1927409816240961209460912649124")
	require.NoError(t, err)
	s := secret // Generate zeroes its argument

	var done int64
	g1, g2, err := Generate(&secret, 37,
		WithWorkers(3),
		WithChunkSize(8),
		WithProgress(func(delta int) { atomic.AddInt64(&done, int64(delta)) }),
	)
	require.NoError(t, err)
	require.Len(t, g1, 37)
	require.Len(t, g2, 37)
	assert.Equal(t, int64(2*37), atomic.LoadInt64(&done))

	g1Gen := curve.G1Generator()
	g2Gen := curve.G2Generator()
	assert.True(t, g1[0].Equal(&g1Gen))
	assert.True(t, g2[0].Equal(&g2Gen))

	pow := field.One()
	for i := range g1 {
		want1 := curve.ScalarMulG1(&g1Gen, &pow)
		want2 := curve.ScalarMulG2(&g2Gen, &pow)
		assert.True(t, g1[i].Equal(&want1), "g1 index %d", i)
		assert.True(t, g2[i].Equal(&want2), "g2 index %d", i)
		pow.Mul(&pow, &s)
	}
}

func TestGenerateZeroesSecret(t *testing.T) {
	secret, err := InsecureRandomSecret()
	require.NoError(t, err)
	require.False(t, secret.IsZero())

	_, _, err = Generate(&secret, 4)
	require.NoError(t, err)
	assert.True(t, secret.IsZero())

	// also on the error path
	secret, err = InsecureRandomSecret()
	require.NoError(t, err)
	_, _, err = Generate(&secret, 0)
	assert.True(t, errors.Is(err, ErrWidth))
	assert.True(t, secret.IsZero())
}

func TestGenerateRejectsZeroSecret(t *testing.T) {
	zero := field.Zero()
	_, _, err := Generate(&zero, 4)
	assert.True(t, errors.Is(err, ErrZeroSecret))
}

func TestSecretFromString(t *testing.T) {
	a, err := SecretFromString("0x10")
	require.NoError(t, err)
	want := field.FromUint64(16)
	assert.True(t, a.Equal(&want))

	_, err = SecretFromString("not a number")
	assert.Error(t, err)
}

func TestGenerateLogsWithoutSecret(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Logger()
	logger.Set(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { logger.Set(prev) })

	secret := field.FromUint64(987654321)
	_, _, err := Generate(&secret, 4, WithWorkers(1))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"trusted setup generated"`)
	assert.Contains(t, buf.String(), `"width":4`)
	assert.NotContains(t, buf.String(), "987654321")
}
