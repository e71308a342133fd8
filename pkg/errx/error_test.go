package errx_test

import (
	"errors"
	"testing"

	"github.com/Abraxas-365/corekit/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("low level")
	err := errx.Wrap(cause, "high level", errx.TypeExternal)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, errx.TypeExternal, err.Type)
	assert.Contains(t, err.Error(), "high level")
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, errx.Wrap(nil, "nothing", errx.TypeInternal))
}

func TestWrapExistingErrorKeepsCode(t *testing.T) {
	inner := errx.Validation("bad input").WithDetail("field", "name")
	err := errx.Wrap(inner, "while creating supplier", errx.TypeInternal)

	assert.Equal(t, string(errx.TypeValidation), err.Code)
	assert.Equal(t, "name", err.Details["field"])
}

func TestRegistry(t *testing.T) {
	reg := errx.NewRegistry("LIFEX")
	code := reg.Register("INVALID_TRANSITION", errx.TypeIllegalState, "invalid state transition")

	err := reg.New(code)
	assert.Equal(t, "LIFEX_INVALID_TRANSITION", err.Code)
	assert.Equal(t, errx.TypeIllegalState, err.Type)

	got, ok := reg.Get("INVALID_TRANSITION")
	require.True(t, ok)
	assert.Same(t, code, got)

	withCause := reg.NewWithCause(code, errors.New("from RUNNING to NEW"))
	assert.ErrorContains(t, withCause, "from RUNNING to NEW")
}
