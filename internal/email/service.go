package email

import "context"

// Service sends clinic notifications. Sending is always best-effort: a
// failed notification is logged by the caller, never surfaced to the user.
type Service interface {
	SendConsultationScheduled(ctx context.Context, to, doctorName, patientName, date, timeOfDay string) error
}

// Noop discards every message. Used when SMTP is not configured.
type Noop struct{}

func (Noop) SendConsultationScheduled(ctx context.Context, to, doctorName, patientName, date, timeOfDay string) error {
	return nil
}
