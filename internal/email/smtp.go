package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendConsultationScheduled(ctx context.Context, to, doctorName, patientName, date, timeOfDay string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Vida Plena - Nova consulta agendada")
	m.SetBody("text/plain", fmt.Sprintf(
		"Olá Dr(a). %s,\n\nUma consulta com o paciente %s foi agendada para %s às %s.\n\nClínica Vida Plena",
		doctorName, patientName, date, timeOfDay,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
