package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBroadcast(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	broadcast(zap.New(core), 3, false)

	received := logs.FilterMessage("consumer received failure").All()
	require.Len(t, received, 3)

	for _, entry := range received {
		fields, ok := entry.ContextMap()["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "connection to 10.0.0.7:5432 reset by peer", fields["message"])
	}

	assert.Equal(t, 3, logs.FilterMessage("recovered concrete error").Len())
}

func TestRootCmd_RejectsNonPositiveConsumers(t *testing.T) {
	for _, arg := range []string{"--consumers=-1", "--consumers=0"} {
		rootCmd.SetArgs([]string{arg})
		rootCmd.SetOut(io.Discard)
		rootCmd.SetErr(io.Discard)

		err := rootCmd.Execute()
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "--consumers must be at least 1")
	}

	consumers = 4
	rootCmd.SetArgs(nil)
}
