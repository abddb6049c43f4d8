package mem

// Wipe overwrites b with zeros using the clear builtin. It scrubs message buffers and key material before they are
// released, on the assumption that the runtime does not elide a clear of a slice the caller still holds a reference
// to (unlike a dead local variable, which the compiler is free to drop entirely).
func Wipe(b []byte) {
	clear(b)
}
