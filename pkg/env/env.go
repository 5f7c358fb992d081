package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/klwxsrx/school-admin/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}

	return val
}

func Parse[T strings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
	}

	return parseValue[T](key, str)
}

func ParseOptional[T strings.SupportedValueParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, nil
	}

	v, err := parseValue[T](key, str)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseWithDefault[T strings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}

	return *v, nil
}

// LoadDotEnv populates missing variables from the given files, existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func parseValue[T strings.SupportedValueParsingTypes](key, str string) (T, error) {
	v, err := strings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s with type %T has invalid value: %w", key, v, err)
	}

	return v, nil
}
