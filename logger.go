package main

import (
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	/* Prefixes */
	LogPrefixInfo  = ": I :: "
	LogPrefixError = ": E :: "
	LogPrefixFatal = ": F :: "

	/* Log output types */
	LogDisabled = "disable"
	LogToStderr = "stderr"
	LogToFile   = "file"

	/* Log options */
	LogTimestamps = "timestamp"
	LogIps        = "ip"
)

/* Level prefixes rendered per logger. Stderr loggers get colored
 * prefixes, file loggers keep them plain so log files stay grep-able.
 */
type LevelPrefixes struct {
	Info  string
	Error string
	Fatal string
}

var (
	plainPrefixes = LevelPrefixes{
		LogPrefixInfo,
		LogPrefixError,
		LogPrefixFatal,
	}

	coloredPrefixes = LevelPrefixes{
		color.GreenString(LogPrefixInfo),
		color.RedString(LogPrefixError),
		color.New(color.FgRed, color.Bold).Sprint(LogPrefixFatal),
	}
)

type LoggerInterface interface {
	Info(string, string, ...interface{})
	Error(string, string, ...interface{})
	Fatal(string, string, ...interface{})
}

type NullLogger struct{}

func (l *NullLogger) Info(prefix, format string, args ...interface{})  {}
func (l *NullLogger) Error(prefix, format string, args ...interface{}) {}
func (l *NullLogger) Fatal(prefix, format string, args ...interface{}) {
	/* Fatal must still halt the process even with logging disabled */
	os.Exit(1)
}

type Logger struct {
	Logger   *log.Logger
	Prefixes LevelPrefixes
}

func (l *Logger) Info(prefix, format string, args ...interface{}) {
	l.Logger.Printf(l.Prefixes.Info+prefix+format, args...)
}

func (l *Logger) Error(prefix, format string, args ...interface{}) {
	l.Logger.Printf(l.Prefixes.Error+prefix+format, args...)
}

func (l *Logger) Fatal(prefix, format string, args ...interface{}) {
	l.Logger.Fatalf(l.Prefixes.Fatal+prefix+format, args...)
}

type LoggerNoPrefix struct {
	Logger   *log.Logger
	Prefixes LevelPrefixes
}

func (l *LoggerNoPrefix) Info(prefix, format string, args ...interface{}) {
	/* Ignore the prefix */
	l.Logger.Printf(l.Prefixes.Info+format, args...)
}

func (l *LoggerNoPrefix) Error(prefix, format string, args ...interface{}) {
	/* Ignore the prefix */
	l.Logger.Printf(l.Prefixes.Error+format, args...)
}

func (l *LoggerNoPrefix) Fatal(prefix, format string, args ...interface{}) {
	/* Ignore the prefix */
	l.Logger.Fatalf(l.Prefixes.Fatal+format, args...)
}

func setupLoggers(logOutput, logOpts, systemLogPath, accessLogPath string) (LoggerInterface, LoggerInterface) {
	logIps := false
	logFlags := 0
	for _, opt := range strings.Split(logOpts, ",") {
		switch opt {
		case "":
			continue

		case LogTimestamps:
			logFlags = log.LstdFlags

		case LogIps:
			logIps = true

		default:
			log.Fatalf("Unrecognized log opt: %s\n", opt)
		}
	}

	switch logOutput {
	case "":
		/* Assume empty means stderr */
		fallthrough

	case LogToStderr:
		/* Return two separate stderr loggers */
		sysLogger := &LoggerNoPrefix{NewLoggerToStderr(logFlags), coloredPrefixes}
		if logIps {
			return sysLogger, &Logger{NewLoggerToStderr(logFlags), coloredPrefixes}
		} else {
			return sysLogger, &LoggerNoPrefix{NewLoggerToStderr(logFlags), coloredPrefixes}
		}

	case LogDisabled:
		/* Return two pointers to same null logger */
		nullLogger := &NullLogger{}
		return nullLogger, nullLogger

	case LogToFile:
		/* Return two separate file loggers */
		sysLogger := &LoggerNoPrefix{NewLoggerToFile(systemLogPath, logFlags), plainPrefixes}
		if logIps {
			return sysLogger, &Logger{NewLoggerToFile(accessLogPath, logFlags), plainPrefixes}
		} else {
			return sysLogger, &LoggerNoPrefix{NewLoggerToFile(accessLogPath, logFlags), plainPrefixes}
		}

	default:
		log.Fatalf("Unrecognized log output type: %s\n", logOutput)
		return nil, nil
	}
}

func NewLoggerToStderr(logFlags int) *log.Logger {
	return log.New(os.Stderr, "", logFlags)
}

func NewLoggerToFile(path string, logFlags int) *log.Logger {
	writer, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		log.Fatalf("Failed to create logger to file %s: %s\n", path, err.Error())
	}
	return log.New(writer, "", logFlags)
}

func printVersionExit() {
	/* Reset the flags before printing version */
	log.SetFlags(0)
	log.Printf("%s\n", HttporVersion)
	os.Exit(0)
}
