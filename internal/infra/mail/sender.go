package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const notificationTemplate = `
<p>A new lead just came in.</p>
<ul>
	<li><strong>Name:</strong> {{.Name}}</li>
	<li><strong>Email:</strong> {{.Email}}</li>
</ul>
<p>Follow up while it's warm.</p>
`

var notificationTmpl = template.Must(template.New("lead-notification").Parse(notificationTemplate))

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// NewEmailSender notifies the sales inbox configured in To about new
// leads.
func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) SendLeadNotification(name, email string) error {
	data := LeadNotificationData{
		Name:  name,
		Email: email,
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render notification template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}
