package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLegal(t *testing.T) {
	c, err := Classify(4, false, false)
	require.NoError(t, err)
	assert.True(t, c.Legal)
	assert.Equal(t, 4, c.BatsmanRuns)
	assert.Equal(t, 0, c.ExtraRuns)
}

func TestClassifyWide(t *testing.T) {
	c, err := Classify(0, false, true)
	require.NoError(t, err)
	assert.False(t, c.Legal)
	assert.Equal(t, 0, c.BatsmanRuns)
	assert.Equal(t, 1, c.ExtraRuns)
}

func TestClassifyNoBallWithRuns(t *testing.T) {
	// The striker can still score off a no-ball; the extra stacks on top.
	c, err := Classify(4, true, false)
	require.NoError(t, err)
	assert.False(t, c.Legal)
	assert.Equal(t, 4, c.BatsmanRuns)
	assert.Equal(t, 1, c.ExtraRuns)
}

func TestClassifyRejectsContradictoryFlags(t *testing.T) {
	_, err := Classify(0, true, true)
	assert.ErrorIs(t, err, ErrInvalidDelivery)
}

func TestClassifyRejectsRunsOutOfRange(t *testing.T) {
	_, err := Classify(-1, false, false)
	assert.ErrorIs(t, err, ErrInvalidDelivery)

	_, err = Classify(7, false, false)
	assert.ErrorIs(t, err, ErrInvalidDelivery)
}
