package email

import (
	"bytes"
	"fmt"
	"text/template"
)

// Bodies for the two notifications the job board sends. Plain text, matching
// what employers received from the original deployment.

var newApplicationTmpl = template.Must(template.New("new_application").Parse(
	`You have a new application for your job posting "{{.JobTitle}}".

Name: {{.Name}}
Email: {{.Email}}
{{- if .CoverLetter}}

Cover Letter:
{{.CoverLetter}}
{{- end}}
`))

var applicationReceivedTmpl = template.Must(template.New("application_received").Parse(
	`Hi {{.Name}},

You have successfully applied for "{{.JobTitle}}". The employer will get back to you soon.
`))

type NewApplicationData struct {
	JobTitle    string
	Name        string
	Email       string
	CoverLetter string
}

// NewApplicationSubject is the subject line for the employer notification.
func NewApplicationSubject(jobTitle, candidateName string) string {
	return fmt.Sprintf("New Application for %q: %s", jobTitle, candidateName)
}

func RenderNewApplication(data NewApplicationData) (string, error) {
	var buf bytes.Buffer
	if err := newApplicationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderApplicationReceived(name, jobTitle string) (string, error) {
	var buf bytes.Buffer
	err := applicationReceivedTmpl.Execute(&buf, struct {
		Name     string
		JobTitle string
	}{Name: name, JobTitle: jobTitle})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
