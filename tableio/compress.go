package tableio

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

func compressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	if _, err := zw.Write(src); err != nil {
		return err
	}
	if flushErr := zw.Flush(); flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

func decompressLz4(src []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(src))
	return io.ReadAll(zr)
}
