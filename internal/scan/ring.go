package scan

// ring keeps the most recent input bytes so error messages can show the
// neighbourhood of a failure in streams that cannot be re-read.
type ring struct {
	buf  []byte
	pos  int
	full bool
}

func newRing(size int) *ring {
	return &ring{buf: make([]byte, size)}
}

func (r *ring) push(c byte) {
	r.buf[r.pos] = c
	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
		r.full = true
	}
}

// String returns the buffered bytes oldest first.
func (r *ring) String() string {
	if !r.full {
		return string(r.buf[:r.pos])
	}

	out := make([]byte, 0, len(r.buf))
	out = append(out, r.buf[r.pos:]...)
	out = append(out, r.buf[:r.pos]...)
	return string(out)
}
