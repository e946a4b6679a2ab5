//go:build !piranha_debug

package multiplier

// invariantChecks gates the debug-only invariant assertions. Release
// builds compile them out entirely.
const invariantChecks = false
