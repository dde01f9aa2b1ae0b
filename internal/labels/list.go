// Package labels implements an ordered, resizable list of text labels and
// the list exercise built on it.
package labels

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrIndexOutOfRange is returned when an index falls outside the list
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes a rejected index
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, size %d: %s", e.Op, e.Index, e.Size, ErrIndexOutOfRange)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// List is an insertion-ordered sequence of labels. Duplicates are allowed.
// The zero value is an empty list ready to use.
type List struct {
	items []string
}

// New creates a list holding labels in order
func New(labels ...string) *List {
	items := make([]string, 0, max(len(labels), 10))
	return &List{items: append(items, labels...)}
}

// Append adds label at the end
func (l *List) Append(label string) {
	l.items = append(l.items, label)
}

// Insert places label at index, shifting the elements at and after index
// one position right. index may equal Size to append.
func (l *List) Insert(index int, label string) error {
	if index < 0 || index > len(l.items) {
		return &IndexError{Op: "insert", Index: index, Size: len(l.items)}
	}
	l.items = slices.Insert(l.items, index, label)
	return nil
}

// Get returns the label at index
func (l *List) Get(index int) (string, error) {
	if err := l.checkIndex("get", index); err != nil {
		return "", err
	}
	return l.items[index], nil
}

// Remove deletes the first element equal to label. It reports whether
// anything was removed; an absent label leaves the list unchanged.
func (l *List) Remove(label string) bool {
	i := slices.Index(l.items, label)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// RemoveAt deletes and returns the element at index
func (l *List) RemoveAt(index int) (string, error) {
	if err := l.checkIndex("remove", index); err != nil {
		return "", err
	}
	label := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return label, nil
}

// Contains reports whether any element equals label
func (l *List) Contains(label string) bool {
	return slices.Contains(l.items, label)
}

// Size returns the number of elements
func (l *List) Size() int {
	return len(l.items)
}

// All iterates the labels in order
func (l *List) All() iter.Seq[string] {
	return slices.Values(l.items)
}

// Values returns a copy of the labels in order
func (l *List) Values() []string {
	return slices.Clone(l.items)
}

func (l *List) checkIndex(op string, index int) error {
	if index < 0 || index >= len(l.items) {
		return &IndexError{Op: op, Index: index, Size: len(l.items)}
	}
	return nil
}
