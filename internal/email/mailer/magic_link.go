// internal/email/mailer/magic_link.go
package mailer

import "github.com/nebulahq/tessera/internal/email"

// MagicLinkTemplateData contains data for the magic-link email template
type MagicLinkTemplateData struct {
	OrganisationName string
	MagicLink        string
	ExpiresIn        string
}

// SendMagicLinkEmail sends a sign-in link scoped to one organisation
func SendMagicLinkEmail(s email.Sender, to, orgName, link, expiresIn string) error {
	templateData := MagicLinkTemplateData{
		OrganisationName: orgName,
		MagicLink:        link,
		ExpiresIn:        expiresIn,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     orgName,
		Subject:      "Your sign-in link for " + orgName,
		TemplateName: "magic_link",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
