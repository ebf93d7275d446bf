package log

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StdoutDest selects console logging instead of a log file.
const StdoutDest = "stdout"

// Rotation policy for file logging: one rotated backup of at most 1 MiB.
const (
	maxLogSizeMB  = 1
	maxLogBackups = 1
)

// Setup configures the process-wide logger. dest is either StdoutDest or
// the path of a log file, which is rotated so scheduled runs cannot fill
// the disk. Only the entry point calls this; everything else receives a
// *logrus.Entry.
func Setup(dest string, debug bool) {
	logrus.SetFormatter(&Formatter{})

	if dest == StdoutDest {
		logrus.SetOutput(os.Stdout)
	} else {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   dest,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		})
	}

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
