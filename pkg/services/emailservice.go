package services

import (
	"fmt"
	"log"

	"fakeshop-io/api/pkg/util"
)

type emailService struct {
	mailer     *util.Mailer
	sender     string
	senderName string
}

// NewEmailService creates a new instance of EmailService
func NewEmailService(mailer *util.Mailer) EmailService {
	return &emailService{
		mailer:     mailer,
		sender:     "no-reply@fakeshop.io",
		senderName: "FakeShop",
	}
}

// SendOTPEmail sends the one time passcode used to verify a new account.
func (e *emailService) SendOTPEmail(email, firstName, otp string) error {
	mail := util.EmailComposer{
		To:         email,
		ToName:     firstName,
		Sender:     e.sender,
		SenderName: e.senderName,
		Body:       fmt.Sprintf(`<body style="font-family: Arial, sans-serif; font-size: 14px;"><p>Dear %v,</p><p>Thank you for creating an account with us!</p><p>Your verification code is:</p><p style="font-size: 24px; font-weight: bold; letter-spacing: 4px;">%v</p><p>The code is valid for 5 minutes. If you did not create an account, please ignore this message.</p><p>Best regards,</p><p>The FakeShop Team</p></body>`, firstName, otp),
		Subject:    "Your FakeShop verification code",
	}

	err := e.mailer.Send(mail)
	if err != nil {
		log.Println("Failed to send otp email:", err)
		return err
	}
	log.Printf("OTP email sent to %v", email)
	return nil
}

// SendWelcomeEmail sends a welcome message after a user verifies their account.
func (e *emailService) SendWelcomeEmail(email, firstName string) error {
	mail := util.EmailComposer{
		To:         email,
		ToName:     firstName,
		Sender:     e.sender,
		SenderName: e.senderName,
		Body:       fmt.Sprintf(`<body style="font-family: Arial, sans-serif; font-size: 14px;"><p>Dear %v,</p><p>Your email has been verified and your FakeShop account is ready.</p><p>You can now browse the catalog, build your cart and save products to your wishlist. Our team is always here to help if you have any questions.</p><p>Happy shopping!</p><p>The FakeShop Team</p></body>`, firstName),
		Subject:    "Welcome to FakeShop",
	}

	err := e.mailer.Send(mail)
	if err != nil {
		log.Println("Failed to send welcome email:", err)
		return err
	}
	log.Printf("Welcome email sent to %v", email)
	return nil
}

// SendPasswordResetEmail sends a password reset link to a user.
func (e *emailService) SendPasswordResetEmail(email, firstName, link string) error {
	mail := util.EmailComposer{
		To:         email,
		ToName:     firstName,
		Sender:     e.sender,
		SenderName: e.senderName,
		Body: fmt.Sprintf(`<body style="font-family: Arial, sans-serif; font-size: 14px;">
    <p>Dear %v,</p>
    <p>We received a request to reset the password for your FakeShop account. To reset your password, please click the button below:</p>
    <div style="text-align: center;">
        <a href="%v" style="background-color: #1A73E8; color: #ffffff; border-radius: 30px; display: inline-block; font-size: 16px; font-weight: bold; padding: 10px 16px; text-align: center; text-decoration: none;">Reset Password</a>
    </div>
    <p>The link is valid for 30 minutes. If you did not request a password reset, please ignore this message and your password will remain unchanged.</p>
    <p>Thank you,</p>
    <p>The FakeShop Team</p>
</body>`, firstName, link),
		Subject: "FakeShop Password Reset Request",
	}

	err := e.mailer.Send(mail)
	if err != nil {
		log.Println("Failed to send password reset email:", err)
		return err
	}
	log.Printf("Password reset email sent to %v", email)
	return nil
}

// SendPasswordResetSuccessfulEmail confirms that a password reset went through.
func (e *emailService) SendPasswordResetSuccessfulEmail(email, firstName string) error {
	mail := util.EmailComposer{
		To:         email,
		ToName:     firstName,
		Sender:     e.sender,
		SenderName: e.senderName,
		Body:       fmt.Sprintf(`<body style="font-family: Arial, sans-serif; font-size: 14px;"><p>Dear %v,</p><p>Your password has been successfully reset.</p><p>If you did not request this password reset, please contact us immediately.</p><p>Best regards,</p><p>The FakeShop Team</p></body>`, firstName),
		Subject:    "Your FakeShop password was reset",
	}

	err := e.mailer.Send(mail)
	if err != nil {
		log.Println("Failed to send password reset confirmation:", err)
		return err
	}
	log.Printf("Password reset confirmation sent to %v", email)
	return nil
}
