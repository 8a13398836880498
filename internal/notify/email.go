// Package notify hands a rendered reminder digest to an email sink. The
// engine knows nothing about delivery; this is shell plumbing around SMTP.
package notify

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
)

// Config holds SMTP connection settings, normally taken from the
// environment so credentials stay out of the schedule config.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// ConfigFromEnv reads SMTP settings from SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASS, and SMTP_FROM. Port defaults to 587 and From to the user.
func ConfigFromEnv() Config {
	cfg := Config{
		Host: os.Getenv("SMTP_HOST"),
		Port: 587,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	}
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		cfg.Port = p
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return cfg
}

// Complete reports whether enough settings are present to attempt a send.
// Callers should fall back to a console preview when it is false.
func (c Config) Complete() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// Send delivers one plain-text message. smtp.SendMail negotiates STARTTLS
// when the server offers it.
func Send(cfg Config, to, subject, body string) error {
	if !cfg.Complete() {
		return fmt.Errorf("incomplete SMTP configuration (need SMTP_HOST, SMTP_USER, SMTP_PASS)")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}
