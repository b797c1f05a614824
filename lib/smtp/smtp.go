package smtp

import (
	"bytes"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
	IsConfigured() bool
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	if from == "" {
		from = user
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.
		WithField("sender", i.from).
		WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("smtp client is not configured, message is not sent")
		return nil
	}
	body, err := ComposeMessage(i.from, to, subject, message)
	if err != nil {
		return err
	}
	var auth sasl.Client
	if i.user != "" {
		auth = sasl.NewPlainClient("", i.user, i.password)
	}
	addr := i.host + ":" + i.port
	if i.tlsEnabled {
		err = smtp.SendMailTLS(addr, auth, i.from, []string{to}, bytes.NewReader(body))
	} else {
		err = smtp.SendMail(addr, auth, i.from, []string{to}, bytes.NewReader(body))
	}
	if err != nil {
		logger.WithError(err).Error("error sending message")
		return errors.Wrap(err, "error sending message")
	}
	logger.Info("message sent")
	return nil
}

// ComposeMessage builds the RFC 5322 message sent to the relay.
func ComposeMessage(from, to, subject, message string) ([]byte, error) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Legal Hub - "+subject)
	msg.SetBody("text/plain", message)
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "error composing message")
	}
	return buf.Bytes(), nil
}
