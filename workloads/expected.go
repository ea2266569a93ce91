package workloads

// Reference result of Arithmetic, shared with the C and Java twins.
const arithmeticReference int64 = 149489914351

// primesBelowSieveSize is pi(100000).
const primesBelowSieveSize int64 = 9592

func ExpectedArithmetic() int64 {
	return arithmeticReference
}

// ExpectedArray is SmallIterations times the sum 0..ArraySize-1.
func ExpectedArray() int64 {
	return SmallIterations * triangle(ArraySize)
}

// ExpectedCalls is the sum of 2i+1 for i below SmallIterations, i.e. n².
func ExpectedCalls() int64 {
	return int64(SmallIterations) * SmallIterations
}

func ExpectedFibonacci() int64 {
	return FibRepeats * fibIter(FibN)
}

func ExpectedSieve() int64 {
	return primesBelowSieveSize
}

// ExpectedNested sums each index over the other two loop extents.
func ExpectedNested() int64 {
	return triangle(NestedI)*NestedJ*NestedK +
		triangle(NestedJ)*NestedI*NestedK +
		triangle(NestedK)*NestedI*NestedJ
}

// triangle returns 0+1+...+(n-1).
func triangle(n int64) int64 {
	return n * (n - 1) / 2
}

func fibIter(n int64) int64 {
	a, b := int64(0), int64(1)
	for i := int64(0); i < n; i++ {
		a, b = b, a+b
	}
	return a
}
