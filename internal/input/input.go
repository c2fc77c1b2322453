// Package input decides where the JSON text comes from.
//
// With no positional argument the text is standard input, except that an
// interactive terminal counts as empty. With one positional argument the
// text is the content of the regular file it names, and if that fails for
// any reason the argument itself is the text. Files and piped input that
// start with the gzip magic bytes are decompressed.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/mattn/go-isatty"

	"jsonpolish/internal/errors"
)

// Kind tells where a Source's text came from.
type Kind int

const (
	Stdin Kind = iota
	File
	Literal
)

func (k Kind) String() string {
	switch k {
	case Stdin:
		return "stdin"
	case File:
		return "file"
	case Literal:
		return "literal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Source is the resolved raw text together with its origin.
type Source struct {
	Kind Kind
	// Path is the file read for File sources and empty otherwise.
	Path string
	Text string
	// Compressed is set when the bytes were gzip data.
	Compressed bool
	// Terminal is set when stdin was an interactive terminal and was not read.
	Terminal bool
}

// Blank reports whether the text is empty or only whitespace.
func (s *Source) Blank() bool {
	return IsBlank(s.Text)
}

// IsBlank reports whether text holds nothing but Unicode whitespace and
// byte order marks.
func IsBlank(text string) bool {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	}) == ""
}

// Resolve produces the raw text for the given positional arguments. It
// accepts at most one; the argument parser has already rejected more.
//
// Only a failed read of stdin is an error. File problems fall back to
// treating the argument as JSON text.
func Resolve(positionals []string, stdin io.Reader) (*Source, error) {
	if len(positionals) > 0 {
		return resolveArg(positionals[0]), nil
	}
	return readStdin(stdin)
}

func resolveArg(arg string) *Source {
	data, compressed, err := readFile(arg)
	if err != nil {
		return &Source{Kind: Literal, Text: arg}
	}
	return &Source{Kind: File, Path: arg, Text: string(data), Compressed: compressed}
}

// readFile reads a regular file, decompressing gzip content.
func readFile(path string) ([]byte, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if !info.Mode().IsRegular() {
		return nil, false, fmt.Errorf("%s is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return maybeGunzip(data)
}

func readStdin(r io.Reader) (*Source, error) {
	if r == nil || IsTerminal(r) {
		return &Source{Kind: Stdin, Terminal: r != nil}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewPolishError(errors.IOFailure,
			fmt.Sprintf("cannot read standard input: %v", err), err)
	}
	data, compressed, err := maybeGunzip(data)
	if err != nil {
		return nil, errors.NewPolishError(errors.IOFailure,
			fmt.Sprintf("cannot read standard input: %v", err), err)
	}
	return &Source{Kind: Stdin, Text: string(data), Compressed: compressed}, nil
}

// IsTerminal reports whether r is an interactive terminal. Only an *os.File
// can be one.
var IsTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip reports whether data starts with the gzip magic bytes.
func IsGzip(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

func maybeGunzip(data []byte) ([]byte, bool, error) {
	if !IsGzip(data) {
		return data, false, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, false, fmt.Errorf("gzip: %w", err)
	}
	return out, true, nil
}
