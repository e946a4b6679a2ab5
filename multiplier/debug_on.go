//go:build piranha_debug

package multiplier

// invariantChecks gates the debug-only invariant assertions. Build with
// -tags piranha_debug to enable them; a failed check is fatal.
const invariantChecks = true
