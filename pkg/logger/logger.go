package logger

import (
	"log"
	"os"
)

// Logger es la interfaz de logging del panel
type Logger interface {
	Info(msg string, clavesYValores ...interface{})
	Error(msg string, clavesYValores ...interface{})
	Debug(msg string, clavesYValores ...interface{})
	Warn(msg string, clavesYValores ...interface{})
}

// SimpleLogger escribe a stdout/stderr con prefijos por nivel
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger crea una nueva instancia de Logger
func NewLogger() Logger {
	return &SimpleLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info registra un mensaje informativo
func (l *SimpleLogger) Info(msg string, clavesYValores ...interface{}) {
	l.infoLogger.Printf(msg+" %v", clavesYValores...)
}

// Error registra un error
func (l *SimpleLogger) Error(msg string, clavesYValores ...interface{}) {
	l.errorLogger.Printf(msg+" %v", clavesYValores...)
}

// Debug registra un mensaje de depuración
func (l *SimpleLogger) Debug(msg string, clavesYValores ...interface{}) {
	l.debugLogger.Printf(msg+" %v", clavesYValores...)
}

// Warn registra una advertencia
func (l *SimpleLogger) Warn(msg string, clavesYValores ...interface{}) {
	l.warnLogger.Printf(msg+" %v", clavesYValores...)
}
