package arrays

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifyArray_DoublesCallerStorage(t *testing.T) {
	array := [5]int{1, 2, 3, 4, 5}

	ModifyArray(array[:])
	assert.Equal(t, [5]int{2, 4, 6, 8, 10}, array)

	// doubling again is not a no-op
	ModifyArray(array[:])
	assert.Equal(t, [5]int{4, 8, 12, 16, 20}, array)
}

func TestModifyArray_Empty(t *testing.T) {
	assert.NotPanics(t, func() { ModifyArray(nil) })
}

func TestArrayValueIsCopied(t *testing.T) {
	array := [5]int{1, 2, 3, 4, 5}

	// assigning an array copies it; only the copy is doubled
	copied := array
	ModifyArray(copied[:])

	assert.Equal(t, [5]int{1, 2, 3, 4, 5}, array)
	assert.Equal(t, [5]int{2, 4, 6, 8, 10}, copied)
}

func TestModifyElement_LeavesCallerValue(t *testing.T) {
	var buf bytes.Buffer
	array := [5]int{2, 4, 6, 8, 10}

	before := array[3]
	ModifyElement(&buf, array[3])

	assert.Equal(t, 8, before)
	assert.Equal(t, 8, array[3])
	assert.Equal(t, "Value of element in modifyElement: 16\n", buf.String())
}

func TestWriteValues(t *testing.T) {
	var buf bytes.Buffer

	WriteValues(&buf, []int{1, 10})

	assert.Equal(t, "     1     10", buf.String())
}

func TestRunPassing(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RunPassing(&buf))

	want := "Effects of passing reference to entire array:\n" +
		"The values of the original array are:\n" +
		"     1     2     3     4     5\n" +
		"\n" +
		"The values of the modified array are:\n" +
		"     2     4     6     8     10\n" +
		"\n" +
		"Effects of passing array element value:\n" +
		"array[3] before modifyElement: 8\n" +
		"Value of element in modifyElement: 16\n" +
		"array[3] after modifyElement: 8\n"
	assert.Equal(t, want, buf.String())
}
