package mem

// SliceForAppend takes a slice and a requested number of additional bytes, and returns an extended slice and the
// newly available tail, reusing in's backing array when it has enough capacity rather than forcing an allocation.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
