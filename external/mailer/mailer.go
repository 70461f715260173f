package mailer

import (
	"bytes"
	"html/template"

	"gopkg.in/gomail.v2"
)

const resetSubject = "Reset Password FluWatch.AI"

var resetTemplate = template.Must(template.New("reset").Parse(`
<div style="font-family:sans-serif;max-width:480px;margin:0 auto;background:#f0faf9;color:#1a2e2c;padding:32px;border-radius:12px;border:1px solid rgba(58,142,133,0.2);">
  <h2 style="color:#3A8E85;margin-bottom:8px;">FluWatch.AI</h2>
  <p style="color:#64748b;margin-bottom:24px;">Halo <strong style="color:#1a2e2c;">{{.Username}}</strong>,</p>
  <p style="margin-bottom:24px;">Kami menerima permintaan reset password untuk akun kamu. Klik tombol di bawah untuk membuat password baru:</p>
  <a href="{{.Link}}"
     style="display:inline-block;background:linear-gradient(135deg,#3A8E85,#006B5F);color:#fff;padding:12px 28px;border-radius:8px;text-decoration:none;font-weight:bold;margin-bottom:24px;">
    Reset Password
  </a>
  <p style="color:#64748b;font-size:13px;">Link ini berlaku selama <strong>1 jam</strong>.</p>
  <p style="color:#64748b;font-size:13px;">Jika kamu tidak meminta reset password, abaikan email ini.</p>
  <hr style="border-color:rgba(58,142,133,0.2);margin:24px 0;">
  <p style="color:#94a3b8;font-size:12px;">FluWatch.AI — Sistem Surveilans Influenza</p>
</div>
`))

type Config struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers the transactional emails
type Mailer interface {
	KirimEmailReset(email, username, link string) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	from   string
	dialer sender
}

// ResetBody renders the HTML body of the reset password email
func ResetBody(username, link string) (string, error) {
	var buf bytes.Buffer
	if err := resetTemplate.Execute(&buf, struct {
		Username string
		Link     string
	}{username, link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *smtpMailer) KirimEmailReset(email, username, link string) error {
	body, err := ResetBody(username, link)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", resetSubject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

// New returns a mailer sending through SMTP with STARTTLS
func New(conf Config) Mailer {
	return &smtpMailer{
		from:   conf.From,
		dialer: gomail.NewDialer(conf.Server, conf.Port, conf.Username, conf.Password),
	}
}
