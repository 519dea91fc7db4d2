package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMalformedFlagsAreUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--person", "abc"},
		{"--timeout", "soon"},
	} {
		var out bytes.Buffer
		err := newApp(&out).Run(context.Background(), append([]string{"integration-tester"}, args...))
		require.Error(t, err, args)
		assert.NotErrorIs(t, err, errFailed, args)
		assert.Empty(t, out.String(), "no report for %v", args)
	}
}

func TestUnreachableServerFailsConnectStep(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	var out bytes.Buffer
	err = newApp(&out).Run(context.Background(), []string{
		"integration-tester",
		"--sse-url", "http://" + addr + "/sse",
		"--timeout", "3s",
		"--person", "15",
	})
	assert.ErrorIs(t, err, errFailed)

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.False(t, report.Passed)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, "connect", report.Steps[0].Name)
	assert.False(t, report.Steps[0].Success)
}
