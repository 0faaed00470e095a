package notify

import (
	"fmt"
	"io"

	"donburi-house/internal/domain"
)

// ConsoleSink prints each notification as it is recorded. Used by the demo
// run; the interactive menu renders the feed itself instead.
type ConsoleSink struct {
	Out io.Writer
}

func (s ConsoleSink) Deliver(n *domain.Notification) error {
	_, err := fmt.Fprintf(s.Out, "\n[NEW NOTIFICATION]\n%s\n", n.Describe())
	return err
}
