package auth

import (
	"fmt"
	"net/smtp"
	"os"

	"linkpage-app/config"
)

func SendPasswordResetEmail(to string, token string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, host)

	link := fmt.Sprintf("%s/reset-password?token=%s", config.FRONTEND_URL, token)
	subject := "Reset Your Password"
	body := fmt.Sprintf("Click the following link to reset your password:\n\n%s\n\nThe link expires in one hour.", link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
