package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWrongEnv(t *testing.T) {
	t.Setenv("ACCESSOR_LOGGING_FORMAT", "wrongFormat")
	lg := Logger()
	assert.NotNil(t, lg)
}

func TestLoggerCorrectEnv(t *testing.T) {
	formatStr := "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{id:03x}%{color:reset} %{message}"
	t.Setenv("ACCESSOR_LOGGING_FORMAT", formatStr)
	lg := Logger()
	assert.NotNil(t, lg)
}

func TestLoggerEmptyEnv(t *testing.T) {
	t.Setenv("ACCESSOR_LOGGING_FORMAT", "")
	lg := Logger()
	assert.NotNil(t, lg)
}

func TestLoggerNotSetEnv(t *testing.T) {
	lg := Logger()
	assert.NotNil(t, lg)
}
