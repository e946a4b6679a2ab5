//go:build !amd64

package monomial

// packedAdd is the lane-wise int16 add used by Packed.AddInto. Non-amd64
// builds use the portable loop form.
var packedAdd = packedAddLoop
