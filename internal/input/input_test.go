package input

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	perrors "jsonpolish/internal/errors"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()

	t.Run("regular file", func(t *testing.T) {
		path := writeFile(t, dir, "data.json", []byte(`{"a":1}`))
		src, err := Resolve([]string{path}, nil)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Kind != File || src.Path != path || src.Text != `{"a":1}` || src.Compressed {
			t.Errorf("Resolve() = %+v", src)
		}
	})

	t.Run("gzip file", func(t *testing.T) {
		path := writeFile(t, dir, "data.json.gz", gzipBytes(t, `[1,2]`))
		src, err := Resolve([]string{path}, nil)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Kind != File || src.Text != `[1,2]` || !src.Compressed {
			t.Errorf("Resolve() = %+v", src)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.json", nil)
		src, err := Resolve([]string{path}, nil)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Kind != File || !src.Blank() {
			t.Errorf("Resolve() = %+v, want blank file source", src)
		}
	})
}

func TestResolve_LiteralFallback(t *testing.T) {
	dir := t.TempDir()
	corrupt := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)

	tests := []struct {
		name string
		arg  string
	}{
		{name: "json text", arg: `{"a":1}`},
		{name: "missing path", arg: filepath.Join(dir, "missing.json")},
		{name: "directory", arg: dir},
		{name: "corrupt gzip file", arg: writeFile(t, dir, "bad.gz", corrupt)},
		{name: "empty string", arg: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Resolve([]string{tt.arg}, strings.NewReader("ignored"))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if src.Kind != Literal || src.Text != tt.arg || src.Path != "" {
				t.Errorf("Resolve() = %+v, want literal %q", src, tt.arg)
			}
		})
	}
}

func TestResolve_UnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	path := writeFile(t, t.TempDir(), "secret.json", []byte(`{"a":1}`))
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}

	src, err := Resolve([]string{path}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if src.Kind != Literal || src.Text != path {
		t.Errorf("Resolve() = %+v, want literal fallback", src)
	}
}

func TestResolve_Stdin(t *testing.T) {
	t.Run("piped text", func(t *testing.T) {
		src, err := Resolve(nil, strings.NewReader(" [true] \n"))
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Kind != Stdin || src.Text != " [true] \n" {
			t.Errorf("Resolve() = %+v", src)
		}
	})

	t.Run("piped gzip", func(t *testing.T) {
		src, err := Resolve(nil, bytes.NewReader(gzipBytes(t, `null`)))
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Text != "null" || !src.Compressed {
			t.Errorf("Resolve() = %+v", src)
		}
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		_, err := Resolve(nil, bytes.NewReader([]byte{0x1f, 0x8b, 0, 0}))
		assertIOFailure(t, err)
	})

	t.Run("read error", func(t *testing.T) {
		_, err := Resolve(nil, failingReader{})
		assertIOFailure(t, err)
		if !strings.HasPrefix(err.Error(), "cannot read standard input: ") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("nil reader", func(t *testing.T) {
		src, err := Resolve(nil, nil)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !src.Blank() {
			t.Errorf("Resolve() = %+v, want blank", src)
		}
	})

	t.Run("interactive terminal", func(t *testing.T) {
		stubTerminal(t, true)
		src, err := Resolve(nil, failingReader{})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Kind != Stdin || !src.Terminal || !src.Blank() {
			t.Errorf("Resolve() = %+v, want blank terminal source", src)
		}
	})

	t.Run("terminal with a positional argument", func(t *testing.T) {
		stubTerminal(t, true)
		src, err := Resolve([]string{`[1]`}, failingReader{})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Kind != Literal || src.Terminal || src.Text != `[1]` {
			t.Errorf("Resolve() = %+v", src)
		}
	})

	t.Run("regular file as stdin", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "in.json", []byte(`{"b":2}`))
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		src, err := Resolve(nil, f)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if src.Terminal || src.Text != `{"b":2}` {
			t.Errorf("Resolve() = %+v", src)
		}
	})
}

// stubTerminal makes every reader look like an interactive terminal, or
// none of them, for the rest of the test.
func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := IsTerminal
	IsTerminal = func(io.Reader) bool { return terminal }
	t.Cleanup(func() { IsTerminal = orig })
}

func TestIsTerminal_NonFileReaders(t *testing.T) {
	for _, r := range []io.Reader{strings.NewReader("x"), &bytes.Buffer{}, failingReader{}} {
		if IsTerminal(r) {
			t.Errorf("IsTerminal(%T) = true, want false", r)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func assertIOFailure(t *testing.T, err error) {
	t.Helper()
	var pe *perrors.PolishError
	if !errors.As(err, &pe) || pe.Code != perrors.IOFailure {
		t.Fatalf("error = %v, want IOFailure", err)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" \t\r\n", true},
		{"  ", true},
		{"\ufeff", true},
		{"\ufeff {}", false},
		{"0", false},
		{" x ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.in); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Stdin: "stdin", File: "file", Literal: "literal", Kind(9): "Kind(9)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
