package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
}

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("debug", "json")
	defer func() {
		Configure("warn", "text")
		defaultLogger.SetFormatter(&logrus.TextFormatter{})
	}()

	assert.True(t, IsDebug())
	Component("region").WithField("used", 3).Debug("grown")

	out := buf.String()
	assert.Contains(t, out, `"component":"region"`)
	assert.Contains(t, out, `"used":3`)
}
