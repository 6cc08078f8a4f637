// Package tableio imports and exports datatables through the public table
// construction and row reading API: a framed binary codec with
// lz4-compressed column payloads, and CSV.
package tableio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/stephennancekivell/go-datatable/datatable"
)

var magic = [4]byte{'G', 'D', 'T', '1'}

// Write serializes a table: a header with the table name, row count and the
// column schema, followed by one lz4-compressed payload per column.
func Write(w io.Writer, table *datatable.DataTable) error {
	var head []byte
	head = append(head, magic[:]...)
	head = appendString(head, table.Name())
	head = binary.AppendUvarint(head, uint64(table.RowCount()))
	head = binary.AppendUvarint(head, uint64(table.Columns().Count()))

	if _, err := w.Write(head); err != nil {
		return err
	}

	for _, col := range table.Columns().All() {
		values, err := encodeValues(col)
		if err != nil {
			return err
		}

		var compressed bytes.Buffer
		if err := compressLz4(values, &compressed); err != nil {
			return fmt.Errorf("column %q: %w", col.Name(), err)
		}

		var frame []byte
		frame = appendString(frame, col.Name())
		frame = append(frame, byte(col.ValueType()))
		frame = binary.AppendUvarint(frame, uint64(compressed.Len()))
		frame = append(frame, compressed.Bytes()...)

		if _, err := w.Write(frame); err != nil {
			return err
		}
	}
	return nil
}

// Read rebuilds a table written by Write.
func Read(r io.Reader) (*datatable.DataTable, error) {
	br := bufio.NewReader(r)

	var head [4]byte
	if _, err := io.ReadFull(br, head[:]); err != nil {
		return nil, err
	}
	if head != magic {
		return nil, fmt.Errorf("not a datatable stream, bad magic %q", head[:])
	}

	name, err := readString(br)
	if err != nil {
		return nil, err
	}
	rows, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, err
	}
	colCount, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, err
	}

	cols := make([]datatable.AnyColumn, 0, colCount)
	for i := uint64(0); i < colCount; i++ {
		colName, err := readString(br)
		if err != nil {
			return nil, err
		}
		tag, err := br.ReadByte()
		if err != nil {
			return nil, err
		}
		payloadLen, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, err
		}
		compressed := make([]byte, payloadLen)
		if _, err := io.ReadFull(br, compressed); err != nil {
			return nil, err
		}
		values, err := decompressLz4(compressed)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", colName, err)
		}

		col, err := decodeValues(colName, datatable.ValueType(tag), int(rows), values)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	return datatable.NewDataTable(name, cols...)
}

func appendString(out []byte, s string) []byte {
	out = binary.AppendUvarint(out, uint64(len(s)))
	return append(out, s...)
}

func readString(br *bufio.Reader) (string, error) {
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return "", err
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(br, raw); err != nil {
		return "", err
	}
	return string(raw), nil
}
