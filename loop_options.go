package compose

import (
	"fmt"
	"time"
)

// LoopOption is a functional option for configuring a Loop.
type LoopOption func(*Loop) error

// WithFrameRate sets the target frame rate for Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) LoopOption {
	return func(l *Loop) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		l.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithQueueSize sets the capacity of the update queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) LoopOption {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}
