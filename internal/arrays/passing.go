package arrays

import (
	"fmt"
	"io"
)

// ModifyArray multiplies each element by 2 in place.
// values shares its backing array with the caller, so the caller sees the change.
func ModifyArray(values []int) {
	for i := range values {
		values[i] *= 2
	}
}

// ModifyElement multiplies its own copy of element by 2 and prints it.
// The caller's variable is never touched.
func ModifyElement(w io.Writer, element int) {
	element *= 2
	fmt.Fprintf(w, "Value of element in modifyElement: %d\n", element)
}

// WriteValues writes every value prefixed by five spaces, without a trailing newline
func WriteValues(w io.Writer, values []int) {
	for _, value := range values {
		fmt.Fprintf(w, "     %d", value)
	}
}

// RunPassing contrasts passing the whole array (shared) with passing a
// single element (copied)
func RunPassing(w io.Writer) error {
	array := [5]int{1, 2, 3, 4, 5}

	fmt.Fprint(w, "Effects of passing reference to entire array:\n"+
		"The values of the original array are:\n")
	WriteValues(w, array[:])

	// Go arrays are values: slice it so ModifyArray works on our storage
	ModifyArray(array[:])
	fmt.Fprint(w, "\n\nThe values of the modified array are:\n")
	WriteValues(w, array[:])

	fmt.Fprintf(w, "\n\nEffects of passing array element value:\n"+
		"array[3] before modifyElement: %d\n", array[3])

	ModifyElement(w, array[3])
	fmt.Fprintf(w, "array[3] after modifyElement: %d\n", array[3])

	return nil
}
