package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	Debugf(format string, v ...interface{})
}

// ThreadLogger tags every line with the goroutine that wrote it
type ThreadLogger struct {
	name  string
	debug bool
}

func newLogger(settings configSettings, name string) *ThreadLogger {
	return &ThreadLogger{name: name, debug: settings.GetBool(sDebug)}
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("[%s] %s", tl.name, fmt.Sprintf(format, v...))
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Printf("[%s] %s", tl.name, fmt.Sprintln(v...))
}

func (tl *ThreadLogger) Debugf(format string, v ...interface{}) {
	if !tl.debug {
		return
	}
	log.Printf("[%s] DEBUG %s", tl.name, fmt.Sprintf(format, v...))
}

func setupLogging(settings configSettings, toStdout bool) (*lumberjack.Logger, error) {
	logFile := settings.GetString(sLogFile)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("could not create log dir: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    settings.GetInt(sLogMaxSize),
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	if toStdout {
		log.SetOutput(io.MultiWriter(os.Stdout, lj))
	} else {
		log.SetOutput(lj)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return lj, nil
}
