package output

import (
	"bytes"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// WriteFile writes data to path, creating or truncating it with mode 0644.
// A path ending in ".gz" is gzip-compressed on the way out.
func WriteFile(path string, data []byte) error {
	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	return os.WriteFile(path, data, 0o644)
}
