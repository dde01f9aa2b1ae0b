package labels

import (
	"fmt"
	"io"
)

// Display writes header followed by every label, each preceded by a space,
// and ends the line
func Display(w io.Writer, list *List, header string) {
	fmt.Fprint(w, header)

	for label := range list.All() {
		fmt.Fprintf(w, " %s", label)
	}
	fmt.Fprintln(w)
}

// Run walks the list through appends, an insert at the front and both kinds
// of removal, printing it after each step
func Run(w io.Writer) error {
	items := New()

	items.Append("red")
	if err := items.Insert(0, "yellow"); err != nil {
		return fmt.Errorf("insert yellow: %w", err)
	}

	fmt.Fprint(w, "Display list contents with counter-controlled loop:")
	for i := 0; i < items.Size(); i++ {
		label, err := items.Get(i)
		if err != nil {
			return fmt.Errorf("read list: %w", err)
		}
		fmt.Fprintf(w, " %s", label)
	}

	Display(w, items, "\nDisplay list contents with enhanced for-loop:")

	items.Append("green")
	items.Append("yellow")
	Display(w, items, "List with two new elements:")

	// first instance only, which is index 0
	items.Remove("yellow")
	Display(w, items, "Remove first instance of yellow:")

	if _, err := items.RemoveAt(1); err != nil {
		return fmt.Errorf("remove green: %w", err)
	}
	Display(w, items, "Remove second list element (green):")

	notWord := "not"
	if items.Contains("red") {
		notWord = ""
	}
	fmt.Fprintf(w, "\"red\" is %s in the list\n", notWord)

	fmt.Fprintf(w, "Size: %d\n", items.Size())
	return nil
}
