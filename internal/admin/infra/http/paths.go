package http

import "strings"

const DefaultPathPrefix = "/admin"

type Paths struct {
	prefix string
}

func NewPaths(prefix string) Paths {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return Paths{prefix: prefix}
}

func (p Paths) Dashboard() string {
	if p.prefix == "" {
		return "/"
	}

	return p.prefix
}

func (p Paths) Login() string {
	return p.prefix + "/login"
}

func (p Paths) Logout() string {
	return p.prefix + "/logout"
}

// Protected matches every path under the prefix not claimed by a more specific route.
func (p Paths) Protected() string {
	return p.prefix + "/{page:.*}"
}
