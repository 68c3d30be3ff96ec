package main

import (
	"io"
	"log"
)

// Logger is the leveled logger used by the driver.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

func newLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "textcipher: ", 0)}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
