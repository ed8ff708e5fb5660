package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendSellerWelcomeEmail greets a seller whose registration just completed
func (s *Service) SendSellerWelcomeEmail(toEmail, toName, businessName string) error {
	subject := "Welcome to BizMandi!"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to BizMandi!</h2>
			<p>Hi %s,</p>
			<p>Your seller registration for <strong>%s</strong> is complete. Your store is now being set up.</p>
			<h3>Next steps:</h3>
			<ul>
				<li>Add your product catalog</li>
				<li>Set your wholesale price tiers</li>
				<li>Share your store link with buyers</li>
			</ul>
			<p><a href="%s/seller/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Seller Dashboard</a></p>
			<p>Thanks,<br>The BizMandi Team</p>
		</body>
		</html>
	`, toName, businessName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your seller registration for %s is complete. Your store is now being set up.

Next steps:
- Add your product catalog
- Set your wholesale price tiers
- Share your store link with buyers

Visit your dashboard: %s/seller/dashboard

Thanks,
The BizMandi Team
	`, toName, businessName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	log.Printf("📧 [EMAIL] Seller welcome email to: %s <%s>", toName, toEmail)
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}
