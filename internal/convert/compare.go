package convert

import (
	"bytes"
	"reflect"

	"github.com/scigolib/dart/internal/bufview"
	"github.com/scigolib/dart/internal/heap"
	"github.com/scigolib/dart/internal/utils"
)

// Compare orders lhs and rhs, returning a negative number, zero, or a
// positive number the way bytes.Compare does. Numeric categories compare
// across int/decimal boundaries by widening to float64. Dart values take
// a byte-identity fast path when both sides are already finalized buffers
// of the same length, falling back to structural comparison otherwise.
func Compare(lhs, rhs any) (int, error) {
	lc, rc := Classify(lhs), Classify(rhs)
	if !AreComparable(lc, rc) {
		return 0, utils.New(utils.TypeMismatch, "Compare: values are not comparable")
	}

	switch lc {
	case CategoryNull:
		return 0, nil
	case CategoryBoolean:
		a, _ := ToBool(lhs)
		b, _ := ToBool(rhs)
		return boolCompare(a, b), nil
	case CategoryInteger, CategoryDecimal:
		return numericCompare(lhs, rhs)
	case CategoryString:
		a, _ := ToString(lhs)
		b, _ := ToString(rhs)
		return bytes.Compare([]byte(a), []byte(b)), nil
	case CategoryDart:
		return compareDart(lhs, rhs)
	case CategoryUser:
		return compareUser(lhs, rhs)
	default:
		return 0, utils.New(utils.TypeMismatch, "Compare: unsupported category")
	}
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func numericCompare(lhs, rhs any) (int, error) {
	a, err := ToFloat64(lhs)
	if err != nil {
		return 0, err
	}
	b, err := ToFloat64(rhs)
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

func compareDart(lhs, rhs any) (int, error) {
	lb, lok := lhs.(*bufview.Buffer)
	rb, rok := rhs.(*bufview.Buffer)
	if lok && rok {
		lBytes, rBytes := lb.Bytes(), rb.Bytes()
		if len(lBytes) == len(rBytes) && bytes.Equal(lBytes, rBytes) {
			return 0, nil
		}
	}

	lh, err := toComparableHeap(lhs)
	if err != nil {
		return 0, err
	}
	rh, err := toComparableHeap(rhs)
	if err != nil {
		return 0, err
	}
	if heap.Equal(lh, rh) {
		return 0, nil
	}
	// No total order is defined over heterogeneous dart trees beyond
	// equality; report an arbitrary but stable non-zero result.
	return -1, nil
}

func toComparableHeap(v any) (*heap.Heap, error) {
	switch t := v.(type) {
	case *heap.Heap:
		return t, nil
	case *bufview.Buffer:
		return nil, utils.New(utils.InvalidArgument, "compareDart: buffer must be definalized before structural comparison")
	default:
		return nil, utils.New(utils.TypeMismatch, "compareDart: not a dart value")
	}
}

func compareUser(lhs, rhs any) (int, error) {
	e, ok := registryFor(lhs)
	if !ok {
		return 0, utils.New(utils.TypeMismatch, "Compare: no registered conversion traits")
	}
	if e.compare == nil {
		if reflect.DeepEqual(lhs, rhs) {
			return 0, nil
		}
		return -1, nil
	}
	n, _ := e.compare(lhs, rhs)
	return n, nil
}
