package http

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/klwxsrx/school-admin/internal/session/domain"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const contentTypeHTML = "text/html; charset=utf-8"

const pageTemplates = `
{{define "layout-start"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.}} | School Admin</title></head>
<body>{{end}}

{{define "layout-end"}}</body>
</html>{{end}}

{{define "login"}}{{template "layout-start" "Sign in"}}
<h1>Admin sign in</h1>
{{with .Error}}<p class="error" role="alert">{{.}}</p>{{end}}
{{with .Warning}}<p class="warning" role="alert">{{.}}</p>{{end}}
{{if .ContinueURL}}<p><a href="{{.ContinueURL}}">Continue to dashboard</a></p>{{end}}
<form method="post" action="{{.LoginURL}}">
<label>Email <input type="email" name="email" value="{{.Email}}" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
{{template "layout-end"}}{{end}}

{{define "dashboard"}}{{template "layout-start" "Dashboard"}}
<h1>Welcome, {{.Profile.Name}}</h1>
<dl>
<dt>Email</dt><dd>{{.Profile.Email}}</dd>
<dt>Role</dt><dd>{{.Profile.Role}}</dd>
</dl>
<form method="post" action="{{.LogoutURL}}"><button type="submit">Sign out</button></form>
{{template "layout-end"}}{{end}}

{{define "error"}}{{template "layout-start" "Error"}}
<h1>Something went wrong</h1>
<p class="error" role="alert">{{.Error}}</p>
<p><a href="{{.RetryURL}}">Try again</a></p>
{{template "layout-end"}}{{end}}
`

var pages = template.Must(template.New("pages").Parse(pageTemplates))

type (
	loginPage struct {
		LoginURL    string
		Email       string
		Error       string
		Warning     string
		ContinueURL string
	}

	dashboardPage struct {
		Profile   domain.UserProfile
		LogoutURL string
	}

	errorPage struct {
		Error    string
		RetryURL string
	}
)

func renderPage(w pkghttp.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	err := pages.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return fmt.Errorf("render %s page: %w", name, err)
	}

	w.SetBody(contentTypeHTML, buf.Bytes())
	return nil
}
