package kson

import (
	"bufio"
	"io"
	"strings"
)

// Input is the character source consumed by the parser. Exhaustion is
// reported with io.EOF; any other error aborts the parse.
type Input interface {
	io.RuneReader
}

// Output is the character sink written by the serializer. *strings.Builder,
// *bytes.Buffer and *bufio.Writer implement it directly.
type Output interface {
	io.ByteWriter
	io.StringWriter
}

// NewStringInput returns an Input reading the characters of s
func NewStringInput(s string) Input {
	return strings.NewReader(s)
}

// NewReaderInput returns an Input decoding UTF-8 from r.
// r is buffered unless it already implements io.RuneReader.
func NewReaderInput(r io.Reader) Input {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// writerOutput forwards every write straight to an io.Writer
type writerOutput struct {
	w       io.Writer
	scratch [1]byte
}

// NewWriterOutput returns an Output writing directly to w, without buffering.
// Wrap w in a bufio.Writer first when many small writes are expensive.
func NewWriterOutput(w io.Writer) Output {
	if out, ok := w.(Output); ok {
		return out
	}
	return &writerOutput{w: w}
}

func (o *writerOutput) WriteByte(c byte) error {
	o.scratch[0] = c
	_, err := o.w.Write(o.scratch[:])
	return err
}

func (o *writerOutput) WriteString(s string) (int, error) {
	return io.WriteString(o.w, s)
}
