package txscan

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressFunc creates a progress indicator for total heights.
type ProgressFunc func(total int) Progress

// TerminalProgress renders a progress bar on stderr.
func TerminalProgress(total int) Progress {
	return progressbar.NewOptions64(
		int64(total),
		progressbar.OptionSetDescription("Classifying blocks"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("blocks"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// SilentProgress tracks progress without rendering anything.
func SilentProgress(total int) Progress {
	return progressbar.DefaultSilent(int64(total))
}
