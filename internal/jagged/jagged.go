// Package jagged prints two-dimensional slices whose rows have different lengths.
package jagged

import (
	"fmt"
	"io"
)

// OutputArray writes rows one per line. Each row is walked up to its own
// length, so rows of any size (including empty ones) are fine.
func OutputArray(w io.Writer, rows [][]int) {
	// loop through rows
	for row := 0; row < len(rows); row++ {
		// loop through columns of current row
		for column := 0; column < len(rows[row]); column++ {
			fmt.Fprintf(w, "%d    ", rows[row][column])
		}

		fmt.Fprintln(w)
	}
}

// Run prints a rectangular and a jagged array by row
func Run(w io.Writer) error {
	array1 := [][]int{{1, 2, 3}, {4, 5, 6}}
	array2 := [][]int{{1, 2}, {3}, {4, 5, 6}}

	fmt.Fprintln(w, "Values in array1 by row are:")
	OutputArray(w, array1)

	fmt.Fprint(w, "\nValues in array2 by row are:\n")
	OutputArray(w, array2)

	return nil
}
