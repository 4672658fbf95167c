package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidPattern, "bad wildcard")
	assert.Equal(t, ErrInvalidPattern, err.Code)
	assert.Equal(t, "bad wildcard", err.Message)
	assert.Equal(t, "[INVALID_PATTERN] bad wildcard", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrNotInstalled, "no executable for %s", "beta")
	assert.Equal(t, "[NOT_INSTALLED] no executable for beta", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrDirectoryUnreadable, "cannot list mods")

	require.NotNil(t, err)
	assert.Equal(t, ErrDirectoryUnreadable, err.Code)
	assert.Equal(t, "[DIRECTORY_UNREADABLE] cannot list mods: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should be %s", "nil"))
}

func TestIs(t *testing.T) {
	err := New(ErrMissingMods, "two rules unmatched")
	target := New(ErrMissingMods, "different message")

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, New(ErrNotInstalled, "other code")))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrInvalidPattern, "bad regex %q", "[")
	wrapped := fmt.Errorf("constructing rule: %w", err)

	assert.True(t, IsErrorCode(err, ErrInvalidPattern))
	assert.True(t, IsErrorCode(wrapped, ErrInvalidPattern))
	assert.False(t, IsErrorCode(wrapped, ErrMissingMods))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrInvalidPattern))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrProcessFailure, GetErrorCode(New(ErrProcessFailure, "spawn failed")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrDirectoryUnreadable, "cannot list mods").
		WithDetail("directory", "/games/arma2/mods")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/games/arma2/mods", details["directory"])
	assert.Nil(t, GetErrorDetails(errors.New("plain")))
}
