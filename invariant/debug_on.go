//go:build debug

package invariant

// Enabled is true in debug builds
const Enabled = true

func violated(msg string) {
	panic("invariant violated: " + msg)
}
