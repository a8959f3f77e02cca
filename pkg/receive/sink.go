package receive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Sink stores a received message and returns where it went.
type Sink interface {
	Store(data []byte) (string, error)
}

// FileExtension is the suffix of files written by FileSink.
const FileExtension = ".syx"

// maxCollisions bounds the suffix search for one second's worth of messages.
const maxCollisions = 1000

// FileSink writes each message to <unix-seconds>.syx in Dir. A second
// message in the same second gets a -1, -2, ... suffix.
type FileSink struct {
	Dir string
	Now func() time.Time
}

// NewFileSink creates a FileSink writing to dir ("" means the working directory).
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir, Now: time.Now}
}

// Store writes data to a new file. Existing files are never overwritten.
func (s *FileSink) Store(data []byte) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	stem := strconv.FormatInt(now().Unix(), 10)

	for n := 0; n < maxCollisions; n++ {
		name := stem
		if n > 0 {
			name = fmt.Sprintf("%s-%d", stem, n)
		}
		path := filepath.Join(s.Dir, name+FileExtension)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s%s in %q", stem, FileExtension, s.Dir)
}
