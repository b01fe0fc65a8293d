package expplot

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// ReadParquet reads the flat columns of a Parquet file. Integer and
// boolean columns become Int, floating point columns Float and byte
// array columns String.
func ReadParquet(r io.ReaderAt, size int64, name string) (*DataFrame, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	schema := pf.Schema()
	fields := schema.Fields()
	builders := make([]*columnBuilder, len(fields))
	kinds := make([]parquet.Kind, len(fields))
	for i, f := range fields {
		if !f.Leaf() {
			return nil, fmt.Errorf("parquet column %q is nested", f.Name())
		}
		kinds[i] = f.Type().Kind()
		builders[i] = &columnBuilder{name: f.Name(), typ: parquetFieldType(kinds[i])}
	}

	rowBuf := make([]parquet.Row, 256)
	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(rowBuf)
			for _, row := range rowBuf[:n] {
				for _, v := range row {
					if c := v.Column(); c >= 0 && c < len(builders) {
						appendParquetValue(builders[c], kinds[c], v)
					}
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to read rows: %w", err)
			}
			if n == 0 {
				break
			}
		}
		rows.Close()
	}
	return buildFrame(name, builders)
}

func parquetFieldType(kind parquet.Kind) FieldType {
	switch kind {
	case parquet.Boolean, parquet.Int32, parquet.Int64:
		return Int
	case parquet.Float, parquet.Double:
		return Float
	}
	return String
}

func appendParquetValue(b *columnBuilder, kind parquet.Kind, v parquet.Value) {
	if v.IsNull() {
		b.addNull()
		return
	}
	switch kind {
	case parquet.Boolean:
		if v.Boolean() {
			b.addNum(1)
		} else {
			b.addNum(0)
		}
	case parquet.Int32:
		b.addNum(float64(v.Int32()))
	case parquet.Int64:
		b.addNum(float64(v.Int64()))
	case parquet.Float:
		b.addNum(float64(v.Float()))
	case parquet.Double:
		b.addNum(v.Double())
	case parquet.ByteArray, parquet.FixedLenByteArray:
		b.addStr(string(v.ByteArray()))
	default:
		b.addStr(v.String())
	}
}
