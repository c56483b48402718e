package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/uoftclubs/clubs-backend/pkg/logger"
	"gopkg.in/gomail.v2"
)

// Client is the outgoing mail client.
type Client struct {
	dialer *gomail.Dialer
}

func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendLoginCode sends the one-time login code to the address.
func (c *Client) SendLoginCode(to string, code string) {
	body := fmt.Sprintf("Your login code is %s. It expires shortly, so use it right away.", code)
	c.send(to, "Your login code", body)
}

// SendOwnerInvite tells the invitee they may create the named club.
func (c *Client) SendOwnerInvite(to string, name string, clubName string) {
	body := fmt.Sprintf("Hi %s,\n\nYou have been invited to create and own the club %q. Sign in with this email address to get started.", name, clubName)
	c.send(to, fmt.Sprintf("Invitation to own %s", clubName), body)
}

// SendCollaboratorInvite tells the invitee they may join the club as a
// collaborator.
func (c *Client) SendCollaboratorInvite(to string, name string, clubName string) {
	body := fmt.Sprintf("Hi %s,\n\nYou have been invited to collaborate on the club %q. Sign in with this email address and accept the invite on the club page.", name, clubName)
	c.send(to, fmt.Sprintf("Invitation to collaborate on %s", clubName), body)
}

func (c *Client) send(to string, subject string, body string) {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")
	messageID := generateMessageID(domain)

	msg.SetHeader("Message-ID", messageID)
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Error(err)
		return
	}

	logger.Log.Infof("Email successfully sent to %s", to)
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
