package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-crossqueue/pkg/settings"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDefaultConfig_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDefaultConfig(&buf))

	var got settings.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, settings.Default(), got)
}

func TestWriteDefaultConfig_WriteError(t *testing.T) {
	err := writeDefaultConfig(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write default config")
	assert.Contains(t, err.Error(), "disk full")
}
