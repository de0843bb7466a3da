package flowkit

import "reflect"

// cloneFrame pairs a source map with the destination map being populated.
type cloneFrame struct {
	src map[string]any
	dst map[string]any
}

// DeepClone returns a deep copy of src. Nested map[string]any values are
// cloned via an explicit worklist instead of recursion, so arbitrarily deep
// inputs cannot exhaust the call stack. Shared and cyclic submaps are cloned
// once and rewired to the same copy. []any values are copied element-wise.
// Values of any other type are copied by assignment.
//
// Returns nil for a nil input. The input is never mutated.
func DeepClone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	out := make(map[string]any, len(src))
	seen := map[uintptr]map[string]any{reflect.ValueOf(src).Pointer(): out}
	work := []cloneFrame{{src: src, dst: out}}

	for len(work) > 0 {
		frame := work[len(work)-1]
		work = work[:len(work)-1]

		for key, value := range frame.src {
			frame.dst[key] = cloneValue(value, seen, &work)
		}
	}

	return out
}

// cloneValue copies a single value, enqueuing nested maps on the worklist.
// Slice nesting recurses; only map nesting is unbounded in practice.
func cloneValue(value any, seen map[uintptr]map[string]any, work *[]cloneFrame) any {
	switch val := value.(type) {
	case map[string]any:
		if val == nil {
			return map[string]any(nil)
		}

		ptr := reflect.ValueOf(val).Pointer()
		if existing, ok := seen[ptr]; ok {
			return existing
		}

		cp := make(map[string]any, len(val))
		seen[ptr] = cp
		*work = append(*work, cloneFrame{src: val, dst: cp})

		return cp
	case []any:
		cp := make([]any, len(val))
		for i, elem := range val {
			cp[i] = cloneValue(elem, seen, work)
		}

		return cp
	default:
		return value
	}
}

// mergePair identifies a (dst, src) map pair already scheduled for merging,
// guarding against revisiting when both sides contain cycles.
type mergePair struct {
	dst uintptr
	src uintptr
}

// mergeFrame pairs a destination map with the source map merged into it.
type mergeFrame struct {
	dst map[string]any
	src map[string]any
}

// DeepMerge merges src into dst and returns dst. Keys present in both where
// both values are map[string]any are merged level by level; any other
// collision is resolved by replacing the destination value with the source
// value (slices and scalars are not concatenated). The merge walks an
// explicit worklist instead of recursing, so nesting depth is unbounded.
// Cyclic sources terminate: a source map encountered twice maps to the same
// destination map both times.
//
// dst is mutated in place; pass DeepClone(dst) to preserve the original.
// A nil dst is allocated. src is never mutated.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}

	if src == nil {
		return dst
	}

	// created records the destination allocated (or first used) for each
	// source map, so repeated or cyclic sources rewire instead of looping.
	created := map[uintptr]map[string]any{reflect.ValueOf(src).Pointer(): dst}
	scheduled := map[mergePair]struct{}{}
	work := []mergeFrame{{dst: dst, src: src}}

	for len(work) > 0 {
		frame := work[len(work)-1]
		work = work[:len(work)-1]

		for key, srcVal := range frame.src {
			srcMap, srcIsMap := srcVal.(map[string]any)
			if !srcIsMap || srcMap == nil {
				frame.dst[key] = srcVal
				continue
			}

			srcPtr := reflect.ValueOf(srcMap).Pointer()

			dstMap, dstIsMap := frame.dst[key].(map[string]any)
			if !dstIsMap || dstMap == nil {
				if existing, ok := created[srcPtr]; ok {
					frame.dst[key] = existing
					continue
				}

				dstMap = make(map[string]any, len(srcMap))
				frame.dst[key] = dstMap
			}

			created[srcPtr] = dstMap

			pair := mergePair{
				dst: reflect.ValueOf(dstMap).Pointer(),
				src: srcPtr,
			}
			if _, done := scheduled[pair]; done {
				continue
			}

			scheduled[pair] = struct{}{}
			work = append(work, mergeFrame{dst: dstMap, src: srcMap})
		}
	}

	return dst
}
