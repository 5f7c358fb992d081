package cmd

import (
	"fmt"
	"time"

	"github.com/klwxsrx/school-admin/pkg/env"
	"github.com/klwxsrx/school-admin/pkg/http"
	"github.com/klwxsrx/school-admin/pkg/strings"
)

const defaultHTTPClientTimeout = 10 * time.Second

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// MustInitClient reads the destination base url from <DESTINATION>_SERVICE_URL.
func (f HTTPClientFactory) MustInitClient(dest http.Destination, extraOpts ...http.ClientOption) http.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", strings.ToScreamingSnakeCase(string(dest)))
	host := env.Must(env.Parse[string](hostEnv))

	return f.impl.InitClient(dest, host, extraOpts...)
}
