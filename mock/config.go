package mock

import "github.com/fwojciec/storyview"

// Compile-time interface verification.
var _ storyview.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of storyview.ConfigLoader.
type ConfigLoader struct {
	LoadFn func(path string) (storyview.Config, error)
}

func (l *ConfigLoader) Load(path string) (storyview.Config, error) {
	return l.LoadFn(path)
}
