// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.True(t, cfg.validate)
	assert.Equal(t, defaultPlayer, cfg.player)
	assert.Equal(t, "Level 7 C-Side", cfg.namer(7, 2))
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithValidation(false), WithPlayer(2), WithValidation(true), WithPlayer(5))
	assert.True(t, cfg.validate)
	assert.Equal(t, 5, cfg.player)
}

func TestBuilderErrorf_KeepsSentinel(t *testing.T) {
	t.Parallel()

	err := builderErrorf(MethodAttachLocations, "%w: %q", ErrUnplacedLocation, "x")
	assert.ErrorIs(t, err, ErrUnplacedLocation)
	assert.Equal(t, `AttachLocations: builder: location has no region: "x"`, err.Error())
}
