// workloads.go
// The six synthetic kernels of the JIT benchmark suite.
// Every kernel uses int64 with two's-complement wraparound so results
// match the C, Java and Limbo versions of the suite bit for bit.

package workloads

// Iteration counts are fixed so timings stay comparable across languages.
const (
	Iterations      = 10000000 // Arithmetic rounds
	SmallIterations = 1000000  // Array, Calls

	ArraySize   = 1000
	FibN        = 25
	FibRepeats  = 100
	SieveSize   = 100000
	SieveRounds = 10

	NestedI = 500
	NestedJ = 500
	NestedK = 200

	warmupSteps = 10000
)

// sink keeps discarded results observable so the compiler cannot drop the work.
var sink int64

// Warmup runs a short summing loop before anything is measured.
func Warmup() {
	sum := int64(0)
	for i := int64(0); i < warmupSteps; i++ {
		sum += i
	}
	sink = sum
}

// Keep stores a discarded kernel result.
func Keep(v int64) {
	sink = v
}

// Arithmetic chains add, multiply, subtract, xor, and, or, shift and
// modulo over three accumulators.
func Arithmetic() int64 {
	a := int64(1)
	b := int64(2)
	c := int64(3)

	for i := int64(0); i < Iterations; i++ {
		a = a + b
		b = b * 3
		c = c - a
		a = a ^ b
		b = b & 0xFFFF
		c = c | 0x1
		a = a << 1
		b = b >> 1
		c = c + (a % 17)
	}
	return a + b + c
}

// Array fills a small buffer with its indices and sums it repeatedly.
func Array() int64 {
	arr := make([]int64, ArraySize)

	for i := 0; i < ArraySize; i++ {
		arr[i] = int64(i)
	}

	sum := int64(0)
	for j := int64(0); j < SmallIterations; j++ {
		for i := 0; i < ArraySize; i++ {
			sum += arr[i]
		}
	}
	return sum
}

// HelperAdd is the callee for Calls. It must stay a real call.
//
//go:noinline
func HelperAdd(a, b int64) int64 {
	return a + b
}

// Calls measures call overhead.
func Calls() int64 {
	sum := int64(0)
	for i := int64(0); i < SmallIterations; i++ {
		sum += HelperAdd(i, i+1)
	}
	return sum
}

// Fib is the naive exponential recursion.
func Fib(n int64) int64 {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}

func Fibonacci() int64 {
	sum := int64(0)
	for i := 0; i < FibRepeats; i++ {
		sum += Fib(FibN)
	}
	return sum
}

// Sieve counts primes below SieveSize, rebuilding the sieve every round.
// The count of the last round is returned.
func Sieve() int64 {
	sieve := make([]int64, SieveSize)
	count := int64(0)

	for iter := 0; iter < SieveRounds; iter++ {
		for i := 0; i < SieveSize; i++ {
			sieve[i] = 1
		}

		sieve[0] = 0
		sieve[1] = 0

		for i := 2; int64(i)*int64(i) < SieveSize; i++ {
			if sieve[i] != 0 {
				for j := i * i; j < SieveSize; j += i {
					sieve[j] = 0
				}
			}
		}

		count = 0
		for i := 0; i < SieveSize; i++ {
			if sieve[i] != 0 {
				count++
			}
		}
	}
	return count
}

// Nested accumulates index sums over a triple loop.
func Nested() int64 {
	sum := int64(0)
	for i := int64(0); i < NestedI; i++ {
		for j := int64(0); j < NestedJ; j++ {
			for k := int64(0); k < NestedK; k++ {
				sum += i + j + k
			}
		}
	}
	return sum
}
