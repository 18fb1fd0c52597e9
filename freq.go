package huffpack

// AlphabetSize is the number of distinct byte values.
const AlphabetSize = 256

// FrequencyTable counts occurrences for each of the 256 possible byte
// values.  The index is the byte value itself, and index order is
// load-bearing: it is the order in which leaves are fed to tree
// construction, not just a display order.
type FrequencyTable [AlphabetSize]uint64

// CountBytes builds a FrequencyTable over p in a single pass and returns
// it together with the total number of bytes counted.  An empty input
// yields an all-zero table and a zero total.
func CountBytes(p []byte) (*FrequencyTable, uint64) {
	ft := new(FrequencyTable)
	for _, b := range p {
		ft[b]++
	}
	return ft, uint64(len(p))
}

// Total returns the sum of all counters.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, f := range ft {
		sum += f
	}
	return sum
}

// distinct returns the number of byte values with a nonzero count, along
// with the last such value seen.
func (ft *FrequencyTable) distinct() (n int, last byte) {
	for i, f := range ft {
		if f != 0 {
			n++
			last = byte(i)
		}
	}
	return n, last
}
