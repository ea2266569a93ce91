package sanity_check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jitbench_go/suite"
)

func constant(v int64) func() int64 {
	return func() int64 { return v }
}

func TestVerify(t *testing.T) {
	benchmarks := []suite.Benchmark{
		{Title: "one", Run: constant(1)},
		{Title: "two", Run: constant(2)},
		{Title: "three", Run: constant(3)},
	}

	assert.NoError(t, Verify(benchmarks, []int64{1, 2, 3}))

	err := Verify(benchmarks, []int64{1, 5, 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two: got 2, want 5")
	assert.Contains(t, err.Error(), "three: got 3, want 9")
	assert.NotContains(t, err.Error(), "one:")

	assert.Error(t, Verify(benchmarks, []int64{1}))
}

func TestExpectedMatchesDefaultOrder(t *testing.T) {
	assert.Len(t, Expected(), len(suite.Default()))
	assert.Equal(t, int64(9592), Expected()[4])
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every kernel")
	}
	var out bytes.Buffer
	require.NoError(t, Check(&out))
	assert.Contains(t, out.String(), "Successfully running JIT Bench!")
	assert.Contains(t, out.String(), "OK")
}
