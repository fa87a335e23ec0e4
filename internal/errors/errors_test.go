package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMenuMissing = New("menu missing")

func loadMenu() error {
	return Wrap(errMenuMissing, "load menu")
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))

	err := Wrap(loadMenu(), "render menu")
	require.Error(t, err)
	assert.EqualError(t, err, "render menu: load menu: menu missing")
	assert.True(t, Is(err, errMenuMissing))
}

func TestStackOf(t *testing.T) {
	assert.Empty(t, StackOf(nil))
	assert.Empty(t, StackOf(errMenuMissing))

	stack := StackOf(Wrap(loadMenu(), "render menu"))
	assert.Contains(t, stack, "loadMenu")
}

func TestWithStack(t *testing.T) {
	assert.NoError(t, WithStack(nil))

	wrapped := loadMenu()
	assert.Same(t, wrapped, WithStack(wrapped))

	fresh := WithStack(errMenuMissing)
	assert.NotEmpty(t, StackOf(fresh))
	assert.True(t, Is(fresh, errMenuMissing))
}

func TestAs(t *testing.T) {
	type codeError struct{ error }
	err := Wrap(codeError{errMenuMissing}, "lookup")

	var target codeError
	require.True(t, As(err, &target))
	assert.Equal(t, errMenuMissing, target.error)
}
