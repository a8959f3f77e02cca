// Package log records a machine-readable capture of the System Exclusive
// messages syx reads and writes.
//
// It is separate from operational logging (slog). A capture log is a
// sequence of CBOR-encoded Events; each command invocation is one Session
// and every event carries the session's UUID.
//
//	fl, _ := log.NewFileLogger("capture.sxlog")
//	defer fl.Close()
//	s := log.NewSession(fl, "split", manufacturer.Default(), digest.MD5)
//	s.Start()
//	s.Message(log.DirectionOut, "out/1.syx", 1, msg)
//	s.End(1)
//
// The "syx log" command reads capture files back with Reader and Filter.
package log
