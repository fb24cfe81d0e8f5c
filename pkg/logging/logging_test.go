package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    log.Level
		wantErr bool
	}{
		{"default level", "", false, log.WarnLevel, false},
		{"explicit info", "info", false, log.InfoLevel, false},
		{"verbose wins", "error", true, log.DebugLevel, false},
		{"invalid level", "chatty", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&bytes.Buffer{}, tt.level, tt.verbose)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNew_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", false)
	require.NoError(t, err)

	logger.WithField("check", "Docker").Debug("probe finished")

	assert.Contains(t, buf.String(), `msg="probe finished"`)
	assert.Contains(t, buf.String(), "check=Docker")
}

func TestNew_PlainWhenNotTerminal(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, "", false)
	require.NoError(t, err)

	formatter, ok := logger.Formatter.(*log.TextFormatter)
	require.True(t, ok)
	assert.True(t, formatter.DisableColors)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	assert.NotNil(t, logger)
}
