package workloads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFib(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{25, 75025},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Fib(tc.n), "Fib(%d)", tc.n)
		assert.Equal(t, tc.want, fibIter(tc.n), "fibIter(%d)", tc.n)
	}
}

func TestHelperAdd(t *testing.T) {
	assert.Equal(t, int64(3), HelperAdd(1, 2))
	assert.Equal(t, int64(-1), HelperAdd(1, -2))
}

func TestExpectedClosedForms(t *testing.T) {
	assert.Equal(t, int64(499500000000), ExpectedArray())
	assert.Equal(t, int64(1000000000000), ExpectedCalls())
	assert.Equal(t, int64(7502500), ExpectedFibonacci())
	assert.Equal(t, int64(9592), ExpectedSieve())
	assert.Equal(t, int64(29925000000), ExpectedNested())
}

func TestSieve(t *testing.T) {
	got := Sieve()
	assert.Equal(t, ExpectedSieve(), got)
	// Fresh buffer each call, so the count never drifts.
	assert.Equal(t, got, Sieve())
}

func TestFibonacci(t *testing.T) {
	assert.Equal(t, ExpectedFibonacci(), Fibonacci())
}

func TestCalls(t *testing.T) {
	assert.Equal(t, ExpectedCalls(), Calls())
}

func TestHeavyKernels(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size kernels in short mode")
	}

	kernels := []struct {
		name string
		run  func() int64
		want int64
	}{
		{"arithmetic", Arithmetic, ExpectedArithmetic()},
		{"array", Array, ExpectedArray()},
		{"nested", Nested, ExpectedNested()},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			first := k.run()
			require.Equal(t, k.want, first)
			assert.Equal(t, first, k.run(), "result must be repeatable")
		})
	}
}

func TestWarmupAndKeep(t *testing.T) {
	Warmup()
	assert.Equal(t, int64(49995000), sink)
	Keep(42)
	assert.Equal(t, int64(42), sink)
}

func BenchmarkArithmetic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Keep(Arithmetic())
	}
}

func BenchmarkArray(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Keep(Array())
	}
}

func BenchmarkCalls(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Keep(Calls())
	}
}

func BenchmarkFibonacci(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Keep(Fibonacci())
	}
}

func BenchmarkSieve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Keep(Sieve())
	}
}

func BenchmarkNested(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Keep(Nested())
	}
}
