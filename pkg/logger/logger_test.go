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
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("bogus"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("info"))
	assert.True(t, ValidLevel("Warn"))
	assert.False(t, ValidLevel("trace"))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "warn", Format: "json", Output: &buf})

	log.Infof("[Test] hidden %d", 1)
	assert.Empty(t, buf.String())

	log.Warnf("[Test] shown %d", 2)
	assert.Contains(t, buf.String(), "[Test] shown 2")
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
