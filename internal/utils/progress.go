package utils

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Standard spinner descriptions
const (
	DescLaunching = "Launching browser"
	DescSharing   = "Sharing"
)

// NewSpinner creates an indeterminate spinner on w that animates on its own
// until Finish or Exit is called. Finish clears the line.
func NewSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetSpinnerChangeInterval(100*time.Millisecond),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}
