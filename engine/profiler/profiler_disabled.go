//go:build !profile

package profiler

// Enabled reports whether the binary was built with the profile tag.
const Enabled = false

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

// Dump is a no-op without the profile tag.
func Dump(path string) error { return nil }
