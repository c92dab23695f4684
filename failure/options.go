package failure

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Option configures erasure via New or From.
type Option func(*config)

// BacktraceEnv enables backtrace capture at erasure when set to 1, true or full.
const BacktraceEnv = "SCG_BACKTRACE"

type config struct {
	backtrace  bool
	callerSkip int
}

var backtraceDefault = sync.OnceValue(func() bool {
	return parseBacktraceEnv(os.LookupEnv(BacktraceEnv))
})

// WithBacktrace overrides the SCG_BACKTRACE default for one erasure.
func WithBacktrace(enabled bool) Option { return func(c *config) { c.backtrace = enabled } }

// WithCallerSkip drops skip more frames from a captured backtrace, for helpers
// that wrap New. Repeated options add up; negative values are ignored.
func WithCallerSkip(skip int) Option {
	return func(c *config) {
		if skip > 0 {
			c.callerSkip += skip
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{backtrace: backtraceDefault()}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return cfg
}

func parseBacktraceEnv(v string, ok bool) bool {
	if !ok {
		return false
	}

	v = strings.ToLower(strings.TrimSpace(v))
	if v == "full" {
		return true
	}

	enabled, err := strconv.ParseBool(v)

	return err == nil && enabled
}
