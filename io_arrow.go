package expplot

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ReadArrow reads an Arrow IPC file (Feather v2). Integer and boolean
// columns become Int, floating point columns Float and string columns
// String.
func ReadArrow(r ipc.ReadAtSeeker, name string) (*DataFrame, error) {
	reader, err := ipc.NewFileReader(r, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow file: %w", err)
	}
	defer reader.Close()

	fields := reader.Schema().Fields()
	builders := make([]*columnBuilder, len(fields))
	for i, f := range fields {
		typ, err := arrowFieldType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", f.Name, err)
		}
		builders[i] = &columnBuilder{name: f.Name, typ: typ}
	}

	for i := 0; i < reader.NumRecords(); i++ {
		rec, err := reader.Record(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read record batch %d: %w", i, err)
		}
		for c, b := range builders {
			appendArrowColumn(b, rec.Column(c))
		}
	}
	return buildFrame(name, builders)
}

func arrowFieldType(t arrow.DataType) (FieldType, error) {
	switch t.ID() {
	case arrow.BOOL, arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return Int, nil
	case arrow.FLOAT32, arrow.FLOAT64:
		return Float, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return String, nil
	}
	return 0, fmt.Errorf("%w: unsupported arrow type %s", ErrTypeMismatch, t)
}

func appendArrowColumn(b *columnBuilder, arr arrow.Array) {
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNull(i) {
			b.addNull()
			continue
		}
		switch a := arr.(type) {
		case *array.Boolean:
			if a.Value(i) {
				b.addNum(1)
			} else {
				b.addNum(0)
			}
		case *array.Int8:
			b.addNum(float64(a.Value(i)))
		case *array.Int16:
			b.addNum(float64(a.Value(i)))
		case *array.Int32:
			b.addNum(float64(a.Value(i)))
		case *array.Int64:
			b.addNum(float64(a.Value(i)))
		case *array.Uint8:
			b.addNum(float64(a.Value(i)))
		case *array.Uint16:
			b.addNum(float64(a.Value(i)))
		case *array.Uint32:
			b.addNum(float64(a.Value(i)))
		case *array.Uint64:
			b.addNum(float64(a.Value(i)))
		case *array.Float32:
			b.addNum(float64(a.Value(i)))
		case *array.Float64:
			b.addNum(a.Value(i))
		case *array.String:
			b.addStr(a.Value(i))
		case *array.LargeString:
			b.addStr(a.Value(i))
		}
	}
}
