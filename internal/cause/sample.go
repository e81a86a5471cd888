package cause

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"

	"fortio.org/safecast"
)

// SampleIndices returns the element indices a sampled check visits for
// a container of length n, in visit order. The same seed always yields
// the same indices, which is what lets the diagnosis replay the exact
// sample the compiled check drew instead of re-sampling and possibly
// missing the element that failed. Duplicates may occur, matching the
// check's own draws.
func SampleIndices(seed uint64, n, limit int) []int {
	if n <= 0 {
		return nil
	}
	if limit <= 0 || n <= limit {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	src, err := safecast.Conv[int64](seed)
	if err != nil {
		// Seeds above math.MaxInt64 fold into range; determinism is all
		// that matters here.
		src = int64(seed >> 1) //nolint:gosec
	}
	rng := rand.New(rand.NewSource(src))
	out := make([]int, limit)
	for i := range out {
		out[i] = rng.Intn(n)
	}
	return out
}

// SortedMapKeys returns a map's keys in a deterministic order so the
// check and the diagnosis agree on which entry a sampled index names.
// Keys sort by their rendered form, ties broken by dynamic type name;
// distinct keys can render identically (1 and "1" under an any key
// type), and an unordered tie would put the randomized map iteration
// order back in play and defeat seed replay.
func SortedMapKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := fmt.Sprint(keys[i].Interface()), fmt.Sprint(keys[j].Interface())
		if ri != rj {
			return ri < rj
		}
		return fmt.Sprintf("%T", keys[i].Interface()) < fmt.Sprintf("%T", keys[j].Interface())
	})
	return keys
}
