package ctxlog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_Fallback(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
	// Must not panic.
	logger.Info("dropped")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Debug("anchor matched", "array", "add_action")

	assert.Contains(t, buf.String(), "anchor matched")
	assert.Contains(t, buf.String(), "array=add_action")
}

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("hidden too")
	assert.Empty(t, buf.String())
}
