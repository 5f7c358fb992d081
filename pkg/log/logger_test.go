package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/school-admin/pkg/log"
)

func TestLogger_WritesFieldsAndContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(buf, log.LevelInfo)

	ctx := logger.WithContext(context.Background(), log.Fields{"clientID": "c1"})
	logger.
		WithField("path", "/admin").
		WithError(errors.New("boom")).
		Warn(ctx, "redirected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "redirected", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/admin", entry["path"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "c1", entry["clientID"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(buf, log.LevelWarn)

	logger.Info(context.Background(), "skipped")
	assert.Empty(t, buf.String())

	logger.Error(context.Background(), "written")
	assert.Contains(t, buf.String(), "written")
}

func TestLogger_Disabled(t *testing.T) {
	buf := &bytes.Buffer{}
	log.NewWithWriter(buf, log.LevelDisabled).Error(context.Background(), "nothing")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, log.LevelDisabled, log.ParseLevel("disabled"))
	assert.Equal(t, log.LevelInfo, log.ParseLevel("verbose"))
}
