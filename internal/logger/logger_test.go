package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestEventsRespectLevel(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithLevel(&buf, log.WarnLevel)
	l.CoercionMiss("when", 2, errors.New("not a date"))
	assert.Empty(t, buf.String())

	l = NewWithLevel(&buf, log.DebugLevel)
	l.CoercionMiss("when", 2, errors.New("not a date"))
	assert.Contains(t, buf.String(), "date coercion skipped")
	assert.Contains(t, buf.String(), "column=when")
}

func TestWrapNil(t *testing.T) {
	l := Wrap(nil)
	require.NotNil(t, l)
	l.TableRendered("t", 3, "ascii")
}
