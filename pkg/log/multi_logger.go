package log

// multiLogger fans one event out to several sinks in order.
type multiLogger []Logger

func (m multiLogger) Log(event Event) {
	for _, l := range m {
		l.Log(event)
	}
}

// NewMultiLogger combines loggers into one, dropping nil entries. It returns
// NoopLogger when nothing is left and the logger itself when only one is.
func NewMultiLogger(loggers ...Logger) Logger {
	var m multiLogger
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	switch len(m) {
	case 0:
		return NoopLogger{}
	case 1:
		return m[0]
	default:
		return m
	}
}
