package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLocalLoggerEnablesDebug(t *testing.T) {
	l, err := New("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestNewDevelopmentLoggerStartsAtInfo(t *testing.T) {
	l, err := New("development")
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}

func TestNewProductionLogger(t *testing.T) {
	l, err := New("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}
