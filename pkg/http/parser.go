package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/school-admin/pkg/strings"
)

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	dataProvider interface {
		FormValues() (map[string][]string, error)
		Cookies() []*http.Cookie
		Body() io.Reader
	}

	requestDataProvider struct {
		*http.Request
	}

	responseDataProvider struct {
		*resty.Response
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func ParseResponse[T any](r *resty.Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(responseDataProvider{r})
}

func FormValue[T strings.SupportedValueParsingTypes](name string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		values, err := p.FormValues()
		if err != nil {
			return result, fmt.Errorf("%w: parse form: %w", ErrParsingError, err)
		}

		value, ok := values[name]
		if !ok || len(value) == 0 {
			return result, fmt.Errorf("%w: form value %s not found", ErrParsingError, name)
		}

		return parseTypedValueImpl[T](value[0])
	}
}

func CookieValue[T strings.SupportedValueParsingTypes](name string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		for _, c := range p.Cookies() {
			if c.Name == name {
				return parseTypedValueImpl[T](c.Value)
			}
		}

		var result T
		return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) FormValues() (map[string][]string, error) {
	err := p.Request.ParseForm()
	if err != nil {
		return nil, err
	}

	return p.Request.PostForm, nil
}

func (p requestDataProvider) Body() io.Reader {
	return p.Request.Body
}

func (p responseDataProvider) FormValues() (map[string][]string, error) {
	return nil, errors.New("form values are not supported for responses")
}

func (p responseDataProvider) Cookies() []*http.Cookie {
	return p.Response.Cookies()
}

func (p responseDataProvider) Body() io.Reader {
	return bytes.NewReader(p.Response.Body())
}

func parseTypedValueImpl[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
