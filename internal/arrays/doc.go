// Package arrays holds the fixed-size array exercises: zero-value
// initialization of a declared array, and the difference between handing a
// function the caller's array storage and handing it a copied element.
package arrays
