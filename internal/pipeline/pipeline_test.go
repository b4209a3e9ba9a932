package pipeline

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miner-core/damage"
	"miner-core/sn"
)

var curve = sn.Curve{Slope: 9, Intercept: 25}

func randomSpectrum(n int, seed int64) []damage.LoadCase {
	rng := rand.New(rand.NewSource(seed))
	out := make([]damage.LoadCase, n)
	for i := range out {
		out[i] = damage.LoadCase{StressAmplitude: 40 + rng.Float64()*260, Cycles: float64(rng.Intn(200000))}
	}
	return out
}

func TestAccumulate_ParallelMatchesSequential(t *testing.T) {
	cases := randomSpectrum(10000, 1)
	want, err := damage.Accumulate(cases, curve)
	require.NoError(t, err)

	for _, cfg := range []Config{{Threads: 1}, {Threads: 4, ChunkSize: 100}, {Threads: 3, ChunkSize: 7}, {Threads: 0, ChunkSize: 1000}} {
		got, err := Accumulate(context.Background(), cases, curve, cfg)
		require.NoError(t, err)
		assert.InEpsilon(t, want.Damage, got.Damage, 1e-12, "cfg=%+v", cfg)
		assert.Equal(t, want.Cases, got.Cases, "breakdown must be in input order, cfg=%+v", cfg)
	}
}

func TestAccumulate_Deterministic(t *testing.T) {
	cases := randomSpectrum(5000, 2)
	cfg := Config{Threads: 8, ChunkSize: 64}
	first, err := Accumulate(context.Background(), cases, curve, cfg)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Accumulate(context.Background(), cases, curve, cfg)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first.Damage), math.Float64bits(again.Damage))
	}
}

func TestAccumulate_Empty(t *testing.T) {
	res, err := Accumulate(context.Background(), nil, curve, Config{Threads: 4})
	require.NoError(t, err)
	assert.Zero(t, res.Damage)
}

func TestAccumulate_FirstInvalidRowWins(t *testing.T) {
	cases := randomSpectrum(1000, 3)
	cases[700].Cycles = -1
	cases[20].StressAmplitude = 0
	_, err := Accumulate(context.Background(), cases, curve, Config{Threads: 4, ChunkSize: 10})
	require.Error(t, err)

	var ie *damage.InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 21, ie.Row)
	assert.Equal(t, damage.FieldStress, ie.Field)
}

func TestAccumulate_ZeroSlope(t *testing.T) {
	_, err := Accumulate(context.Background(), randomSpectrum(100, 4), sn.Curve{Intercept: 25}, Config{Threads: 2, ChunkSize: 10})
	assert.ErrorIs(t, err, damage.ErrInvalidInput)
	assert.ErrorIs(t, err, sn.ErrZeroSlope)
}

func TestAccumulate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Accumulate(ctx, randomSpectrum(100, 5), curve, Config{Threads: 2, ChunkSize: 10})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPlan(t *testing.T) {
	threads, size, chunks := Config{Threads: 8, ChunkSize: 10}.Plan(25)
	assert.Equal(t, 3, threads)
	assert.Equal(t, 10, size)
	assert.Equal(t, 3, chunks)

	threads, size, chunks = Config{Threads: 2}.Plan(0)
	assert.Equal(t, 1, threads)
	assert.Equal(t, DefaultChunkSize, size)
	assert.Equal(t, 0, chunks)
}
