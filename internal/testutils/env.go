package testutils

import "os"

// Setenv applies vars to the process environment and returns a function
// that puts every touched variable back, unsetting those that were absent.
// Meant for TestMain, where t.Setenv is not available.
func Setenv(vars map[string]string) (restore func()) {
	type previous struct {
		value string
		set   bool
	}
	saved := make(map[string]previous, len(vars))
	for key, value := range vars {
		old, ok := os.LookupEnv(key)
		saved[key] = previous{value: old, set: ok}
		_ = os.Setenv(key, value)
	}
	return func() {
		for key, prev := range saved {
			if prev.set {
				_ = os.Setenv(key, prev.value)
			} else {
				_ = os.Unsetenv(key)
			}
		}
	}
}
