package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Event carries everything the confirmation mail needs. PaymentURL is
// empty for cash bookings.
type Event struct {
	To         string
	MentorName string
	Date       string
	Time       string
	PaymentURL string
}

type Mailer interface {
	Send(ev Event) error
}

// ===============================
// SMTP
// ===============================

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(host, port, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *SMTPMailer) Send(ev Event) error {
	var body strings.Builder
	body.WriteString("Dear Member,\n\n")
	body.WriteString("You have booked an appointment with:\n")
	body.WriteString("Mentor: " + ev.MentorName + "\n")
	body.WriteString("Date: " + ev.Date + "\n")
	body.WriteString("Time: " + ev.Time + "\n\n")

	if ev.PaymentURL != "" {
		body.WriteString("To complete your booking, please pay online via the link below:\n")
		body.WriteString(ev.PaymentURL + "\n\n")
	} else {
		body.WriteString("Please pay for our session on the day of your appointment.\n\n")
	}

	body.WriteString("Thank you for choosing UthMentor.\nBest regards,\nUthMentor - GuideBook")

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Appointment Confirmation - UthMentor\r\n\r\n%s",
		m.from, ev.To, body.String(),
	)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{ev.To}, []byte(msg))
}
