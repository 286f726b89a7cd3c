package autodiff

// Scratch returns buf[:n] when buf is long enough and a new slice otherwise.
// Evaluation kernels pass a slice of a local array so that low order
// evaluations do not touch the heap. The contents of the result are undefined.
func Scratch[T any](buf []T, n int) []T {
	if n <= len(buf) {
		return buf[:n:n]
	}
	return make([]T, n)
}
