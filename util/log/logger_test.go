package log

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFormatPlain(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "config is odd",
		Data: logrus.Fields{
			"path": "/tmp/repo/.git/config",
			"err":  errors.New("bad bool"),
		},
	}

	flf := &FancyLogFormatter{UseColors: false}
	data, err := flf.Format(entry)
	require.Nil(t, err)

	line := string(data)
	require.True(t, strings.HasPrefix(line, "07.03.2024/09:05:03 ⚠"), line)
	require.True(t, strings.HasSuffix(line, "config is odd [err=bad bool path=/tmp/repo/.git/config]\n"), line)
}

func TestFormatNoFields(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Now(),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{},
	}

	flf := &FancyLogFormatter{UseColors: false}
	data, err := flf.Format(entry)
	require.Nil(t, err)
	require.True(t, strings.HasSuffix(string(data), " hello\n"))
	require.NotContains(t, string(data), "[")
}

func TestColorByLevel(t *testing.T) {
	require.Equal(t, "x", colorByLevel(logrus.Level(99), "x"))
	require.Contains(t, colorByLevel(logrus.ErrorLevel, "x"), "x")
}
