package notify

import "context"

// Message is one outbound email. HTML is optional.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

// Mailer is the outbound notification port. Callers treat delivery
// as best-effort: a send failure is logged, never returned to the
// end user.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
