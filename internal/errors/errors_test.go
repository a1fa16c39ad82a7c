package errors

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestContentRejectedError(t *testing.T) {
	err := NewContentRejected("no downloadable PDF for volume %s", "abc123")
	assert.Equal(t, "no downloadable PDF for volume abc123", err.Error())
	assert.True(t, IsContentRejected(err))
}

func TestIsContentRejectedWrapped(t *testing.T) {
	err := fmt.Errorf("fetch: %w", NewContentRejected("empty body"))
	assert.True(t, IsContentRejected(err))
}

func TestIsContentRejectedOtherError(t *testing.T) {
	assert.False(t, IsContentRejected(fmt.Errorf("connection refused")))
	assert.False(t, IsContentRejected(nil))
}
