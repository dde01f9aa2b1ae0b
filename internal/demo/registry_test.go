package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Order(t *testing.T) {
	var names []string
	for _, d := range All() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Summary)
		assert.NotNil(t, d.Run)
	}

	assert.Equal(t, []string{ArrayDefaults, ArrayPassing, JaggedArray, LabelList}, names)
}

func TestAll_ReturnsCopy(t *testing.T) {
	demos := All()
	demos[0].Name = "changed"

	assert.Equal(t, ArrayDefaults, All()[0].Name)
}

func TestLookup(t *testing.T) {
	d, err := Lookup(JaggedArray)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Run(&buf))
	assert.Contains(t, buf.String(), "Values in array2 by row are:")
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("linked-list")
	require.ErrorIs(t, err, ErrUnknownDemo)
	assert.EqualError(t, err, `unknown demo: "linked-list"`)
}
