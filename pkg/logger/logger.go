package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Init configures the global logger. Development gets human-readable
// console output with debug enabled; anything else logs JSON at info.
func Init(environment string) {
	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

func Debug(msg string, args ...interface{}) {
	emit(log.Debug(), msg, args)
}

func Info(msg string, args ...interface{}) {
	emit(log.Info(), msg, args)
}

func Warn(msg string, args ...interface{}) {
	emit(log.Warn(), msg, args)
}

func Error(msg string, args ...interface{}) {
	emit(log.Error(), msg, args)
}

func Fatal(msg string, args ...interface{}) {
	emit(log.Fatal(), msg, args)
}

// emit accepts either alternating key/value pairs or a single trailing
// value (commonly an error), so call sites stay terse.
func emit(ev *zerolog.Event, msg string, args []interface{}) {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			ev.Err(err).Msg(msg)
			return
		}
		ev.Interface("detail", args[0]).Msg(msg)
		return
	}

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}
