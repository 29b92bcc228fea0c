package format

import (
	"testing"

	"github.com/cloudcmds/clarify/explain"
	"github.com/stretchr/testify/assert"
)

func TestFormatFullRecord(t *testing.T) {
	record := &explain.Explanation{
		Message:      "NameError: name 'countr' is not defined\n",
		Generic:      "A `NameError` exception indicates that a variable is not known.\n",
		Cause:        "In your program, no object with the name `countr` exists.\n",
		Suggest:      "Did you mean `counter`?\n",
		RaisedHeader: "Exception raised on line 1 of file '<test>'.\n",
		RaisedSource: "total = counter + countr",
		Highlight:    "                  ^^^^^^",
		VarInfo:      "    counter = 3",
		Warnings:     []string{"Warning: you have redefined the builtin `len`.\n"},
	}
	out := NewFormatter(false).Format(record)

	assert.Contains(t, out, "NameError: name 'countr' is not defined\n")
	assert.Contains(t, out, "Did you mean `counter`?\n")
	assert.Contains(t, out, "Likely cause:\n    In your program")
	assert.Contains(t, out, "    total = counter + countr\n")
	assert.Contains(t, out, "    total = counter + countr\n                      ^^^^^^\n",
		"the marker line sits directly under the quoted source")
	assert.Contains(t, out, "counter = 3")
	assert.Contains(t, out, "redefined the builtin `len`")
}

func TestFormatSkipsEmptySections(t *testing.T) {
	record := &explain.Explanation{
		Message: "ValueError: math domain error\n",
		Generic: "A `ValueError` indicates an inappropriate value.\n",
	}
	out := NewFormatter(false).Format(record)

	assert.NotContains(t, out, "Likely cause")
	assert.NotContains(t, out, "Exception raised")
	assert.NotContains(t, out, "Warning")
}
