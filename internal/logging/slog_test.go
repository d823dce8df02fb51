package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	ctx := context.Background()
	log.Info(ctx, "hidden")
	log.Warn(ctx, "visible", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "key=value")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "whatever")

	ctx := context.Background()
	log.Debug(ctx, "hidden")
	log.Info(ctx, "visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestWith_ChildCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	child := log.With("flow", "signup")
	require.NotNil(t, child)
	child.Info(context.Background(), "started")

	assert.Contains(t, buf.String(), "flow=signup")
}
