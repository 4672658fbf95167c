package registry

import (
	"sync"
	"testing"

	"github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	reg := New[int]()

	require.NoError(t, reg.Register("arma2", 1))
	require.NoError(t, reg.Register("arma3", 2))

	v, err := reg.Get("arma2")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = reg.Get("dayz")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRegisterEmptyName(t *testing.T) {
	reg := New[string]()
	err := reg.Register("", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRegisterDuplicate(t *testing.T) {
	reg := New[string]()
	require.NoError(t, reg.Register("arma2", "a"))

	err := reg.Register("arma2", "b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestListSorted(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("takeonh", 3))
	require.NoError(t, reg.Register("arma2", 1))
	require.NoError(t, reg.Register("arma2oa", 2))

	assert.Equal(t, []string{"arma2", "arma2oa", "takeonh"}, reg.List())
	assert.Equal(t, 3, reg.Count())
	assert.True(t, reg.Has("arma2oa"))
	assert.False(t, reg.Has("arma4"))
}

func TestMustRegisterPanics(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "arma2", 1)

	assert.Panics(t, func() {
		MustRegister(reg, "arma2", 2)
	})
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("arma2", 1))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = reg.Get("arma2")
				_ = reg.List()
			}
		}()
	}
	wg.Wait()
}
