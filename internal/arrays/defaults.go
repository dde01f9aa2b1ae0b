package arrays

import (
	"fmt"
	"io"
)

// DefaultsLength is the length of the array printed by RunDefaults
const DefaultsLength = 10

// WriteIndexTable writes an "Index"/"Value" header followed by one
// right-aligned row per element
func WriteIndexTable(w io.Writer, values []int) {
	fmt.Fprintf(w, "%s%8s\n", "Index", "Value")

	for i := 0; i < len(values); i++ {
		fmt.Fprintf(w, "%5d%8d\n", i, values[i])
	}
}

// RunDefaults declares an int array and prints it without writing to it,
// so every row shows the zero value
func RunDefaults(w io.Writer) error {
	var array [DefaultsLength]int

	WriteIndexTable(w, array[:])
	return nil
}
