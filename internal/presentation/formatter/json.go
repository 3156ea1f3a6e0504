package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

// WriteJSON renders v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	out, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
