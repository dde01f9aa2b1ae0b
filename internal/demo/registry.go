// Package demo registers the exercises under stable names and runs them
// with logging and metrics around each run.
package demo

import (
	"errors"
	"fmt"
	"io"

	"go-arrays/internal/arrays"
	"go-arrays/internal/jagged"
	"go-arrays/internal/labels"
)

// Demo names
const (
	ArrayDefaults = "array-defaults"
	ArrayPassing  = "array-passing"
	JaggedArray   = "jagged-array"
	LabelList     = "label-list"
)

// ErrUnknownDemo is returned by Lookup for names that are not registered
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is one self-contained exercise writing to w
type Demo struct {
	Name    string                  `json:"name"`
	Summary string                  `json:"summary"`
	Run     func(w io.Writer) error `json:"-"`
}

var registry = []Demo{
	{
		Name:    ArrayDefaults,
		Summary: "Zero values of a freshly declared [10]int",
		Run:     arrays.RunDefaults,
	},
	{
		Name:    ArrayPassing,
		Summary: "Passing array storage vs. passing a copied element",
		Run:     arrays.RunPassing,
	},
	{
		Name:    JaggedArray,
		Summary: "Row-by-row traversal of rectangular and jagged arrays",
		Run:     jagged.Run,
	},
	{
		Name:    LabelList,
		Summary: "Insert, remove, search and iterate a list of labels",
		Run:     labels.Run,
	},
}

// All returns every demo in registration order
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a demo by name
func Lookup(name string) (Demo, error) {
	for _, d := range registry {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}
