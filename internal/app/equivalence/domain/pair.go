package domain

// NormalizePair reorders two product ids into canonical orientation:
// the smaller id first. Every equivalence pair is stored exactly once in
// this orientation, so (x, y) and (y, x) hit the same row and no inverse
// duplicate can exist.
func NormalizePair(x, y int64) (lo, hi int64) {
	if x <= y {
		return x, y
	}
	return y, x
}
