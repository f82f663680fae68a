package assembler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/syzasm/isa"
)

// Program is the assembled image. The index of a word is its address.
type Program []uint16

// Bytes returns the image as big-endian words with no header.
func (p Program) Bytes() []byte {
	return isa.AppendWords(make([]byte, 0, len(p)*2), p...)
}

// WriteTo writes the image to w.
func (p Program) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// OutputPath replaces the extension of src with .bin.
func OutputPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".bin"
}

// WriteFile writes the image to path. Bytes already written stay on disk
// if the write fails part way.
func (p Program) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Kind: IOFailure, Msg: fmt.Sprintf("creating %s", path), Err: err}
	}

	_, err = p.WriteTo(f)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return &Error{Kind: IOFailure, Msg: fmt.Sprintf("writing %s", path), Err: err}
	}
	return nil
}
