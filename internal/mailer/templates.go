package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/TimKirathe/wonderland-api/internal/models"
)

var (
	contactNotificationTmpl = template.Must(template.New("contact-notification").Parse(`
<h2>New Information Request</h2>
<p>Reference: <strong>{{.ReferenceID}}</strong></p>
<table cellpadding="4">
  <tr><td>Parent</td><td>{{.ParentName}}</td></tr>
  <tr><td>Email</td><td>{{.Email}}</td></tr>
  <tr><td>Phone</td><td>{{.Phone}}</td></tr>
  <tr><td>Child age</td><td>{{.ChildAge}}</td></tr>
  {{with .Message}}<tr><td>Message</td><td>{{.}}</td></tr>{{end}}
</table>
<p>Received {{.CreatedAt}}.</p>
`))

	inquiryNotificationTmpl = template.Must(template.New("inquiry-notification").Parse(`
<h2>New Enrollment Inquiry</h2>
<p>Reference: <strong>{{.ReferenceID}}</strong></p>
<table cellpadding="4">
  <tr><td>Parent</td><td>{{.ParentName}} ({{.Relationship}})</td></tr>
  <tr><td>Email</td><td>{{.Email}}</td></tr>
  <tr><td>Phone</td><td>{{.Phone}}</td></tr>
  <tr><td>Child</td><td>{{.ChildName}}</td></tr>
  <tr><td>Date of birth</td><td>{{.DateOfBirth}}</td></tr>
  <tr><td>Program</td><td>{{.Program}}</td></tr>
  {{with .SpecialNeeds}}<tr><td>Special needs</td><td>{{.}}</td></tr>{{end}}
  {{with .PreviousSchool}}<tr><td>Previous school</td><td>{{.}}</td></tr>{{end}}
  {{with .PreferredStartDate}}<tr><td>Preferred start</td><td>{{.}}</td></tr>{{end}}
  {{with .HowHeard}}<tr><td>How they heard of us</td><td>{{.}}</td></tr>{{end}}
  {{with .Message}}<tr><td>Message</td><td>{{.}}</td></tr>{{end}}
</table>
<p>Received {{.CreatedAt}}.</p>
`))

	inquiryConfirmationTmpl = template.Must(template.New("inquiry-confirmation").Parse(`
<h2>Thank you, {{.ParentName}}!</h2>
<p>We received your enrollment inquiry for <strong>{{.ChildName}}</strong>
({{.Program}}). Your reference number is <strong>{{.ReferenceID}}</strong> —
please quote it in any follow-up.</p>
<p>Our admissions team will contact you within two working days.</p>
<p>Warm regards,<br>Wonderland Kindergarten</p>
`))
)

// ContactNotification renders the staff email for an information request.
func ContactNotification(req *models.ContactRequest) (subject, html string, err error) {
	subject = fmt.Sprintf("New information request %s from %s", req.ReferenceID, req.ParentName)
	html, err = render(contactNotificationTmpl, req)
	return subject, html, err
}

// InquiryNotification renders the staff email for an enrollment inquiry.
func InquiryNotification(inq *models.EnrollmentInquiry) (subject, html string, err error) {
	subject = fmt.Sprintf("New enrollment inquiry %s for %s", inq.ReferenceID, inq.ChildName)
	html, err = render(inquiryNotificationTmpl, inq)
	return subject, html, err
}

// InquiryConfirmation renders the confirmation sent back to the guardian.
func InquiryConfirmation(inq *models.EnrollmentInquiry) (subject, html string, err error) {
	subject = "We received your enrollment inquiry — Wonderland Kindergarten"
	html, err = render(inquiryConfirmationTmpl, inq)
	return subject, html, err
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
