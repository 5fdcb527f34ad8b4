package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMail(t *testing.T) {
	html := RenderMail(MailMessage{
		To:      "someone@test.local",
		Subject: "Invoice overdue",
		Body:    "Your <b>March</b> invoice is overdue.",
	})

	assert.Contains(t, html, "<title>Invoice overdue</title>")
	assert.Contains(t, html, "Your <b>March</b> invoice is overdue.")
	assert.False(t, strings.Contains(html, "{{subject}}"))
	assert.False(t, strings.Contains(html, "{{body}}"))
}
