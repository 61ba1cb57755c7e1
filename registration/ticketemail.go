package registration

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/patricktheassistant/cyon-movie-night/email"
	"github.com/patricktheassistant/cyon-movie-night/events"
)

//go:embed templates
var templates embed.FS

// BuildTicketEmail renders the attendee's ticket email, with the QR
// code embedded as a data URL so the ticket works offline.
func BuildTicketEmail(ticket Ticket, event events.Info) (email.Email, error) {
	qrDataURL, err := ticketQRCodeDataURL(ticket)
	if err != nil {
		return email.Email{}, err
	}

	htmlBody, err := renderTemplate("ticket.tmpl", map[string]any{
		"Ticket": ticket,
		"Event":  event,
		// template.URL because html/template refuses data: URLs in
		// src attributes otherwise.
		"QRCodeDataURL": template.URL(qrDataURL),
	})
	if err != nil {
		return email.Email{}, err
	}

	textBody, err := renderTemplate("ticket-textonly.tmpl", map[string]any{
		"Ticket": ticket,
		"Event":  event,
	})
	if err != nil {
		return email.Email{}, err
	}

	return email.Email{
		ToAddress: ticket.AttendeeEmail,
		Subject:   fmt.Sprintf("Your Ticket for %s - %s", event.Theme, ticket.ID),
		HTMLBody:  htmlBody,
		TextBody:  textBody,
	}, nil
}

// BuildAdminNotificationEmail renders the notification sent to the
// administrator after each registration.
func BuildAdminNotificationEmail(adminAddress string, ticket Ticket, event events.Info) (email.Email, error) {
	htmlBody, err := renderTemplate("admin-notification.tmpl", map[string]any{
		"Ticket": ticket,
		"Event":  event,
	})
	if err != nil {
		return email.Email{}, err
	}

	return email.Email{
		ToAddress: adminAddress,
		Subject:   fmt.Sprintf("New Registration - %s (%s)", ticket.AttendeeName, ticket.ID),
		HTMLBody:  htmlBody,
	}, nil
}

func renderTemplate(name string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template %q: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template %q: %w", name, err)
	}

	return buf.String(), nil
}
