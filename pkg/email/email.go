package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"opportunity-match-backend/internal/domain"
)

// Service sends transactional mail over plain SMTP.
type Service struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewService(host, port, username, password string) *Service {
	return &Service{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     username,
	}
}

const applicationAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Application</title>
</head>
<body>
    <p>You have a new applicant for <strong>{{.JobTitle}}</strong>.</p>
    <p><strong>{{.Name}}</strong> ({{.Email}})</p>
    {{if .Resume}}<p>Resume: {{.Resume}}</p>{{end}}
    <p>Log in to review the application.</p>
</body>
</html>`

var alertTmpl = template.Must(template.New("application_alert").Parse(applicationAlertTemplate))

// SendApplicationAlert notifies a posting's owner about a new applicant.
func (s *Service) SendApplicationAlert(recruiterEmail string, applicant domain.ApplicantCard, jobTitle string) error {
	var body bytes.Buffer
	data := struct {
		domain.ApplicantCard
		JobTitle string
	}{ApplicantCard: applicant, JobTitle: jobTitle}
	if err := alertTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render application alert: %w", err)
	}

	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + recruiterEmail + "\r\n" +
		"Subject: New application for " + jobTitle + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" + body.String())

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{recruiterEmail}, msg); err != nil {
		return fmt.Errorf("send application alert: %w", err)
	}
	return nil
}
