package notification

import "strings"

// mailTemplate is the static HTML shell every outgoing mail is rendered
// into. Substitution is plain placeholder replacement.
const mailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{subject}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<h2 style="color: #2c5f2d;">MyCondominium</h2>
<h3>{{subject}}</h3>
<div>{{body}}</div>
<hr style="border: none; border-top: 1px solid #ddd;">
<p style="font-size: 12px; color: #999;">This is an automated message, please do not reply.</p>
</div>
</body>
</html>`

// RenderMail fills the template with a message's subject and body.
func RenderMail(msg MailMessage) string {
	r := strings.NewReplacer(
		"{{subject}}", msg.Subject,
		"{{body}}", msg.Body,
	)
	return r.Replace(mailTemplate)
}
