package log

import (
	"time"

	"github.com/google/uuid"

	"github.com/syxpack/syx-go/pkg/digest"
	"github.com/syxpack/syx-go/pkg/manufacturer"
	"github.com/syxpack/syx-go/pkg/syxerr"
	"github.com/syxpack/syx-go/pkg/sysex"
)

// MaxLogDataSize is the maximum message data included in events (4 KB).
// Larger messages are truncated in log events to bound log file growth.
const MaxLogDataSize = 4096

// Session stamps events from one command invocation with a shared ID.
type Session struct {
	ID       string
	Command  string
	logger   Logger
	registry *manufacturer.Registry
	digest   digest.Algorithm
	now      func() time.Time
}

// NewSession creates a session with a fresh UUID. A nil logger disables logging.
func NewSession(logger Logger, command string, reg *manufacturer.Registry, alg digest.Algorithm) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		ID:       uuid.NewString(),
		Command:  command,
		logger:   logger,
		registry: reg,
		digest:   alg,
		now:      time.Now,
	}
}

func (s *Session) event(dir Direction, cat Category, source string, index int) Event {
	return Event{
		Timestamp: s.now(),
		SessionID: s.ID,
		Direction: dir,
		Category:  cat,
		Source:    source,
		Index:     index,
	}
}

// Start records the start of the command.
func (s *Session) Start() {
	e := s.event(DirectionIn, CategorySession, "", 0)
	e.Session = &SessionEvent{Command: s.Command, State: SessionStarted}
	s.logger.Log(e)
}

// End records the end of the command and how many messages it handled.
func (s *Session) End(messages int) {
	e := s.event(DirectionIn, CategorySession, "", 0)
	e.Session = &SessionEvent{Command: s.Command, State: SessionEnded, Messages: messages}
	s.logger.Log(e)
}

// Message records one framed message read from or written to source.
func (s *Session) Message(dir Direction, source string, index int, raw []byte) {
	s.MessageSkipped(dir, source, index, raw, 0)
}

// MessageSkipped is like Message and also records how many input tokens were
// dropped while assembling raw.
func (s *Session) MessageSkipped(dir Direction, source string, index int, raw []byte, skipped int) {
	e := s.event(dir, CategoryMessage, source, index)
	e.Message = s.describe(raw)
	e.Message.Skipped = skipped
	s.logger.Log(e)
}

// Error records err while performing context.
func (s *Session) Error(source, context string, err error) {
	e := s.event(DirectionIn, CategoryError, source, 0)
	data := &ErrorEventData{Message: err.Error(), Context: context}
	if k := syxerr.KindOf(err); k != syxerr.KindUnknown {
		data.Kind = k.String()
	}
	e.Error = data
	s.logger.Log(e)
}

// describe builds a MessageEvent for raw.
func (s *Session) describe(raw []byte) *MessageEvent {
	me := &MessageEvent{
		Size:   len(raw),
		Digest: s.digest.Hex(raw),
		Data:   raw,
	}
	if len(raw) > MaxLogDataSize {
		me.Data = raw[:MaxLogDataSize]
		me.Truncated = true
	}

	msg, err := sysex.Parse(raw)
	if err != nil {
		return me
	}
	switch m := msg.(type) {
	case *sysex.ManufacturerSpecific:
		me.Variant = VariantManufacturer
		me.Manufacturer = m.Manufacturer.String()
		if s.registry != nil {
			me.ManufacturerName = s.registry.Name(m.Manufacturer)
		}
	case *sysex.Universal:
		me.Variant = VariantUniversal
		me.UniversalKind = uint8(m.Kind)
	}
	return me
}
