package math

// Strategy names the 4-wide kernel in use: "simd/avx2" or "simd/avx512"
// after the widest extension the CPU reports, or "scalar". The SIMD kernel is
// only compiled on amd64 with GOEXPERIMENT=simd and only taken on CPUs with
// AVX2. Build with -tags gmath_nosimd to force the scalar kernel.
func Strategy() string {
	return strategyName()
}
