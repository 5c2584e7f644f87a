package lexicon

// Bucket is a run of same-length entries sorted by code.
type Bucket []Entry

// Range is an inclusive run of bucket indices that share one code.
type Range struct {
	Lower int `msgpack:"lo"`
	Upper int `msgpack:"hi"`
}

// Len returns the number of words in the range.
func (r Range) Len() int {
	return r.Upper - r.Lower + 1
}

// FindRange returns every index whose code equals code.
//
// All codes in a bucket have the bucket's length, so plain string comparison
// orders them the same way their numeric values would. A code of any other
// length cannot match and is reported as not found.
func (b Bucket) FindRange(code string) (Range, bool) {
	if len(b) == 0 || len(code) != len(b[0].Code) {
		return Range{}, false
	}

	at := b.search(code)
	if at < 0 {
		return Range{}, false
	}

	lower, upper := at, at
	for lower > 0 && b[lower-1].Code == code {
		lower--
	}
	for upper+1 < len(b) && b[upper+1].Code == code {
		upper++
	}
	return Range{Lower: lower, Upper: upper}, true
}

// search returns any one index holding code, or -1.
func (b Bucket) search(code string) int {
	lo, hi := 0, len(b)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := b[mid].Code; {
		case c == code:
			return mid
		case c > code:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return -1
}
