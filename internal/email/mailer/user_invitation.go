// internal/email/mailer/user_invitation.go
package mailer

import "github.com/nebulahq/tessera/internal/email"

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	OrganisationName string
	InvitationLink   string
	ExpiresAt        string
	Message          string
}

// SendInvitationEmail invites a user into an organisation
func SendInvitationEmail(s email.Sender, to, orgName, link, expiresAt, message string) error {
	templateData := InvitationTemplateData{
		OrganisationName: orgName,
		InvitationLink:   link,
		ExpiresAt:        expiresAt,
		Message:          message,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     orgName,
		Subject:      "You have been invited to " + orgName,
		TemplateName: "user_invitation",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
