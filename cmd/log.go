package cmd

import (
	"os"

	colorlog "github.com/Worcrow/wyag/util/log"
	isatty "github.com/mattn/go-isatty"
	e "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	log.SetFormatter(&colorlog.FancyLogFormatter{
		UseColors: isatty.IsTerminal(os.Stderr.Fd()),
	})
}

// logFile is the file the log currently goes to, if any.
var logFile *os.File

// setLogPath redirects the log to `path`. "stdout" and "stderr" are special.
// Colors are only used when the target is a terminal.
// A log file opened by a previous call is closed.
func setLogPath(path string) error {
	var fd *os.File

	switch path {
	case "", "stderr":
		log.SetOutput(os.Stderr)
		setLogColors(isatty.IsTerminal(os.Stderr.Fd()))
	case "stdout":
		log.SetOutput(os.Stdout)
		setLogColors(isatty.IsTerminal(os.Stdout.Fd()))
	default:
		var err error
		fd, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // #nosec
		if err != nil {
			return e.Wrapf(err, "open log %s", path)
		}

		log.SetOutput(fd)
		setLogColors(false)
	}

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			log.Warningf("Failed to close previous log file: %v", err)
		}
	}

	logFile = fd
	return nil
}

func setLogColors(useColors bool) {
	log.SetFormatter(&colorlog.FancyLogFormatter{UseColors: useColors})
}

func setLogLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return err
	}

	log.SetLevel(level)
	return nil
}
