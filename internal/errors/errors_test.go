package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsIdentity(t *testing.T) {
	base := New("boom")

	wrapped := Wrapf(Wrap(base, "inner"), "outer %d", 1)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "outer 1: inner: boom", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(base)), "TestWrapKeepsIdentity")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}
