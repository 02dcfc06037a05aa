package iter

import (
	"strings"

	"github.com/scigolib/dart/internal/heap"
)

// SplitPath tokenizes a nested-lookup path on sep, dropping empty
// leading/trailing segments produced by a leading/trailing separator.
func SplitPath(path, sep string) []string {
	if path == "" {
		return nil
	}
	raw := strings.Split(path, sep)
	out := make([]string, 0, len(raw))
	for _, seg := range raw {
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// JoinPath is the inverse of SplitPath.
func JoinPath(segments []string, sep string) string {
	return strings.Join(segments, sep)
}

// GetNestedHeap performs left-to-right tokenized object lookup starting
// at h. Any missing key or non-object intermediate segment yields
// (nil, false, nil) rather than an error — a nested lookup miss is not
// exceptional.
func GetNestedHeap(h *heap.Heap, path, sep string) (*heap.Heap, bool, error) {
	cur := h
	for _, seg := range SplitPath(path, sep) {
		if cur == nil || cur.Kind() != heap.KindObject {
			return nil, false, nil
		}
		next, ok, err := cur.Get(seg)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		cur = next
	}
	return cur, true, nil
}

// GetNestedOrHeap is GetNestedHeap with a default substituted on any
// miss.
func GetNestedOrHeap(h *heap.Heap, path, sep string, def *heap.Heap) (*heap.Heap, error) {
	v, ok, err := GetNestedHeap(h, path, sep)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}
