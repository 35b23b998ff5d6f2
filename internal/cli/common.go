package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

func NewSpinner(w io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(w))
}
