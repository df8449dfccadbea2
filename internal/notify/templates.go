package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

var subjects = map[Kind]string{
	KindWelcome:         "Welcome!",
	KindPasswordReset:   "Password reset",
	KindPasswordChanged: "Your password was changed",
}

var bodies = template.Must(template.New("notify").Parse(`
{{define "welcome"}}<html><body>
<h1>Welcome, {{or .name "friend"}}!</h1>
<p>Thanks for signing up. Your account is ready.</p>
{{if .app_url}}<p><a href="{{.app_url}}">Open the app</a></p>{{end}}
</body></html>{{end}}

{{define "password_reset"}}<html><body>
<h1>Password reset</h1>
<p>You requested a password reset. Use the link below to set a new password:</p>
<p><a href="{{.reset_url}}?token={{.reset_token}}">Reset password</a></p>
<p>The link is valid for 1 hour. If you did not request this, ignore this email.</p>
</body></html>{{end}}

{{define "password_changed"}}<html><body>
<h1>Password changed</h1>
<p>Your password was changed successfully.</p>
<p>If this was not you, contact support immediately.</p>
</body></html>{{end}}
`))

// Render produces the subject and HTML body for a notification kind.
func Render(kind Kind, data map[string]string) (subject, body string, err error) {
	subject, ok := subjects[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown notification kind %q", kind)
	}
	var buf bytes.Buffer
	if err := bodies.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
