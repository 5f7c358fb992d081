package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/school-admin/pkg/lazy"
)

func TestLoader_LoadsOnce(t *testing.T) {
	calls := 0
	l := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	loadedValues := make([]int, 0)
	l.IfLoaded(func(v int) { loadedValues = append(loadedValues, v) })
	assert.Empty(t, loadedValues)

	assert.Equal(t, 42, l.MustLoad())
	assert.Equal(t, 42, l.MustLoad())
	assert.Equal(t, 1, calls)

	l.IfLoaded(func(v int) { loadedValues = append(loadedValues, v) })
	assert.Equal(t, []int{42}, loadedValues)
}

func TestLoader_MustLoadPanicsOnError(t *testing.T) {
	l := lazy.New(func() (string, error) {
		return "", errors.New("unavailable")
	})

	_, err := l.Load()
	assert.Error(t, err)
	assert.Panics(t, func() { l.MustLoad() })
}
