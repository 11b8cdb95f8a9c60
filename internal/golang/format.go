package golang

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// Format gofmts generated source and drops imports it does not use.
// filename only labels parse errors.
func Format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return out, nil
}
