package log

// Logger receives capture events from a Session.
type Logger interface {
	// Log records an event. Implementations must be safe for concurrent use
	// and must not retain event.Message.Data after returning.
	Log(event Event)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(event Event)

// Log calls f(event).
func (f LoggerFunc) Log(event Event) { f(event) }

// NoopLogger discards all events. Sessions without a capture log use it.
type NoopLogger struct{}

func (NoopLogger) Log(Event) {}

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
)
