package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "logfmt")
	require.NoError(t, err)

	logger.Info("subscription opened", "subId", 7)
	require.Contains(t, buf.String(), "subscription opened")
	require.Contains(t, buf.String(), "subId=7")
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "")
	require.NoError(t, err)

	logger.Info("hidden")
	require.Empty(t, buf.String())
}
