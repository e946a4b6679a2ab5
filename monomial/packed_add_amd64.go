//go:build amd64

package monomial

import "golang.org/x/sys/cpu"

// packedAdd is the lane-wise int16 add used by Packed.AddInto. On amd64
// the fully unrolled form is selected at init when the CPU offers wide
// integer SIMD, letting the compiler keep all eight lanes in vector
// registers; older CPUs keep the portable loop.
var packedAdd = packedAddLoop

func init() {
	if cpu.X86.HasAVX2 || cpu.X86.HasSSE41 {
		packedAdd = packedAddUnrolled
	}
}

// packedAddUnrolled sums all eight lanes with no loop.
func packedAddUnrolled(dst, a, b *[PackedMaxArity]int16) {
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
	dst[4] = a[4] + b[4]
	dst[5] = a[5] + b[5]
	dst[6] = a[6] + b[6]
	dst[7] = a[7] + b[7]
}
