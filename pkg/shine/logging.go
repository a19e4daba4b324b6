package shine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger writes the mod's game log: one plain-text file per calendar day
// under the configured directory, each line stamped with the time of day.
// Every line is echoed to the server console as well. The audit trail of
// executed commands goes through here.
type Logger struct {
	dir        string
	dateFormat string
	enabled    bool
}

// NewLogger builds a logger from the config and creates the log directory.
func NewLogger(conf *Config) *Logger {
	if conf == nil {
		conf = DefaultConfig()
	}
	l := &Logger{
		dir:        conf.LogDir,
		dateFormat: conf.DateFormat,
		enabled:    conf.EnableLogging,
	}
	if l.enabled {
		if err := os.MkdirAll(l.dir, 0755); err != nil {
			log.Printf("WARNING: Could not create log directory %s: %v", l.dir, err)
		}
	}
	return l
}

// Filename returns the log file path for the given day. Files roll over
// naturally when the date changes between writes.
func (l *Logger) Filename(t time.Time) string {
	return filepath.Join(l.dir, t.Format(l.dateFormat)+".txt")
}

// Print formats a message, echoes it to the server console and appends it
// to the current day's log file. File errors are logged as warnings and the
// line dropped; command dispatch never fails on logging.
func (l *Logger) Print(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s", msg)
	if l != nil {
		l.append(time.Now(), msg)
	}
}

func (l *Logger) append(now time.Time, msg string) {
	if !l.enabled {
		return
	}
	f, err := os.OpenFile(l.Filename(now), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("WARNING: Could not open log file: %v", err)
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "[%s] %s\n", now.Format("15:04:05"), msg); err != nil {
		log.Printf("WARNING: Could not write log file: %v", err)
	}
}
