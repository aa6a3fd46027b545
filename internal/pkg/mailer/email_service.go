package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendFlagAlert(toEmail, reviewerName, intent, queryText, reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendFlagAlert notifies an admin that a queue item was flagged for review.
func (s *emailService) SendFlagAlert(toEmail, reviewerName, intent, queryText, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("[QA Review] Response flagged (%s)", intent))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A response was flagged</h2>
			<p><b>Reviewer:</b> %s</p>
			<p><b>Intent:</b> %s</p>
			<p><b>Query:</b> %s</p>
			<p><b>Reason:</b> %s</p>
			<p>Open the admin dashboard to resolve it.</p>
		</div>
	`, reviewerName, intent, queryText, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
