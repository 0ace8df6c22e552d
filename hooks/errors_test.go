package hooks_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("listener failed")
	err := &hooks.Error{
		Kind:   hooks.KindEffect,
		Anchor: 3,
		Detail: "effect failed",
		Cause:  cause,
	}

	assert.Equal(t, "hooks: effect (anchor 3): effect failed: listener failed", err.Error())
	assert.ErrorIs(t, err, hooks.ErrEffect)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, hooks.ErrCommit)

	wrapped := fmt.Errorf("frame: %w", err)
	assert.ErrorIs(t, wrapped, hooks.ErrEffect)

	assert.Equal(t, "hooks: missing_root", hooks.ErrMissingRoot.Error())
}
