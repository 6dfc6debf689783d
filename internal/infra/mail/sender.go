package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

type welcomeData struct {
	Name string
	PIN  string
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<p>Dear {{.Name}},</p>
<p>Your membership registration has been received. Your program identification
number (PIN) is <strong>{{.PIN}}</strong>.</p>
<p>Keep this number safe: you will need it to create your online account and
for all transactions with the program.</p>
`))

func (s *EmailSender) SendWelcome(to, name, pin string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, welcomeData{Name: name, PIN: pin}); err != nil {
		return fmt.Errorf("rendering welcome template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to the program, %s", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending welcome mail: %w", err)
	}
	return nil
}
