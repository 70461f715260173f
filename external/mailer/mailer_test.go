package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"
)

type recordSender struct {
	messages []*gomail.Message
}

func (r *recordSender) DialAndSend(m ...*gomail.Message) error {
	r.messages = append(r.messages, m...)
	return nil
}

func TestResetBody(t *testing.T) {
	body, err := ResetBody("budi<script>", "http://localhost:5173/reset-password?token=abc")
	assert.NoError(t, err)
	assert.Contains(t, body, "budi&lt;script&gt;")
	assert.Contains(t, body, `href="http://localhost:5173/reset-password?token=abc"`)
	assert.Contains(t, body, "1 jam")
	assert.Contains(t, body, "FluWatch.AI — Sistem Surveilans Influenza")
}

func TestKirimEmailReset(t *testing.T) {
	r := &recordSender{}
	m := &smtpMailer{from: "noreply@fluwatch.id", dialer: r}

	err := m.KirimEmailReset("budi@example.com", "budi", "http://localhost/reset")
	assert.NoError(t, err)
	assert.Len(t, r.messages, 1)

	msg := r.messages[0]
	assert.Equal(t, []string{"noreply@fluwatch.id"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"budi@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Reset Password FluWatch.AI"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Reset Password")
}
