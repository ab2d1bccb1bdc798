package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	log, err := New()
	require.NoError(t, err)
	require.NotNil(t, log)
	_ = log.Sync()
}

func TestMustPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		Must(nil, errors.New("boom"))
	})
}

func TestMustReturnsLogger(t *testing.T) {
	log := zap.NewNop()
	assert.Same(t, log, Must(log, nil))
}

func TestNamedNilBase(t *testing.T) {
	assert.NotNil(t, Named(nil, "svc.composer"))
}
