//go:build noprom

package metrics

// With -tags noprom the recorder stays the no-op default.
func enablePrometheus(addr string) error { return nil }
