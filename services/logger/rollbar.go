package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/user"
)

// RollbarLogger ships every entry to rollbar and mirrors it to std. A
// user.User among the args becomes the person on the report rather than a
// payload item.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// payload prefixes msg to the rollbar args and strips out user.User values;
// the first one tags the report's person. Accounts have no email column, so
// the person carries ID and username only.
func (l RollbarLogger) payload(msg string, args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, msg)

	var person user.User
	var tagged bool
	for _, arg := range args {
		if usr, ok := arg.(user.User); ok {
			if !tagged {
				person, tagged = usr, true
			}
			continue
		}
		out = append(out, arg)
	}
	if tagged {
		rollbar.SetPerson(person.ID, person.Username, "")
	} else {
		rollbar.ClearPerson()
	}
	return out
}

func (l RollbarLogger) mirror(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.payload(msg, args)...)
	l.mirror(msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.payload(msg, args)...)
	l.mirror(msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.payload(msg, args)...)
	l.mirror(msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.payload(msg, args)...)
	l.mirror(msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.payload(msg, args)...)
	l.mirror(msg, args)
	l.std.Fatal(msg)
}
