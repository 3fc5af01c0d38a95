package errs

import (
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Handle logs err together with the innermost stack trace it carries. With stop
// set it panics after logging, which is how startup failures abort the process.
func Handle(err error, stop bool) {
	if err == nil {
		return
	}

	var withStack stackTracer
	if !errors.As(err, &withStack) {
		if stop {
			logging.Panic(err)
		} else {
			logging.Error(err)
		}
		return
	}

	st := withStack.StackTrace()
	if stop {
		logging.Panicf("%v\n%+v", err, st)
	} else {
		logging.Errorf("%v\n%+v", err, st)
	}
}
