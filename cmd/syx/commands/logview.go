package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/syxpack/syx-go/pkg/inspect"
	"github.com/syxpack/syx-go/pkg/log"
)

// LogOptions configures RunLog.
type LogOptions struct {
	Filter log.Filter
	// Stats prints a summary instead of the events.
	Stats bool
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	var label string
	switch {
	case event.Message != nil:
		label = event.Message.Variant.String()
	case event.Session != nil:
		label = event.Session.Command + " " + event.Session.State
	case event.Error != nil:
		label = "Error"
	default:
		label = "Unknown"
	}
	fmt.Fprintf(w, "%s [session:%s] %-3s %s\n", ts, shortenID(event.SessionID), event.Direction, label)

	if event.Source != "" {
		if event.Index > 0 {
			fmt.Fprintf(w, "  Source: %s #%d\n", event.Source, event.Index)
		} else {
			fmt.Fprintf(w, "  Source: %s\n", event.Source)
		}
	}

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Session != nil:
		if event.Session.State == log.SessionEnded {
			fmt.Fprintf(w, "  Messages: %d\n", event.Session.Messages)
		}
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatMessageDetails(w io.Writer, m *log.MessageEvent) {
	fmt.Fprintf(w, "  Size: %s\n", inspect.FormatByteCount(m.Size))
	if m.Manufacturer != "" {
		fmt.Fprintf(w, "  Manufacturer: %s (%s)\n", m.Manufacturer, m.ManufacturerName)
	}
	if m.Variant == log.VariantUniversal {
		fmt.Fprintf(w, "  Universal: 0x%02X\n", m.UniversalKind)
	}
	if m.Digest != "" {
		fmt.Fprintf(w, "  Digest: %s\n", m.Digest)
	}
	if m.Skipped > 0 {
		fmt.Fprintf(w, "  Skipped tokens: %d\n", m.Skipped)
	}
	if len(m.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", inspect.FormatBytesPreview(m.Data, 32))
		if m.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	if e.Kind != "" {
		fmt.Fprintf(w, "  Kind: %s\n", e.Kind)
	}
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
}

// ParseDirectionFlag parses a direction string (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "session":
		return log.CategorySession, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message, session, or error)", s)
	}
}

// Stats holds aggregate statistics about a capture log.
type Stats struct {
	TotalEvents       int
	TotalBytes        int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Manufacturers     map[string]int
	Sessions          map[string]string
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if _, ok := s.Sessions[event.SessionID]; !ok {
		s.Sessions[event.SessionID] = ""
	}
	switch {
	case event.Session != nil:
		s.Sessions[event.SessionID] = event.Session.Command
	case event.Message != nil:
		s.TotalBytes += event.Message.Size
		if event.Message.Manufacturer != "" {
			s.Manufacturers[event.Message.ManufacturerName]++
		}
	case event.Error != nil:
		s.Errors++
	}
}

func printStats(w io.Writer, s *Stats) {
	fmt.Fprintln(w, "=== syx Capture Log Statistics ===")
	fmt.Fprintln(w)

	if s.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			s.TimeRange.Start.Format(time.RFC3339),
			s.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", s.TotalEvents)
	fmt.Fprintf(w, "Message Bytes: %d\n", s.TotalBytes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategorySession, log.CategoryError} {
		if count := s.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := s.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(s.Manufacturers) > 0 {
		names := make([]string, 0, len(s.Manufacturers))
		for name := range s.Manufacturers {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "Messages by Manufacturer:")
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, s.Manufacturers[name])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(s.Sessions))
	if s.Errors > 0 {
		fmt.Fprintf(w, "Errors: %d\n", s.Errors)
	}
}

// RunLog prints the events of a capture log, or their statistics.
func RunLog(path string, opts LogOptions, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, opts.Filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Manufacturers:     make(map[string]int),
		Sessions:          make(map[string]string),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if opts.Stats {
			stats.add(event)
			continue
		}
		formatEvent(w, event)
	}

	if opts.Stats {
		printStats(w, stats)
	}
	return nil
}
