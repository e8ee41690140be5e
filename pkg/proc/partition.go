// Package proc distributes input files across parallel worker units and
// merges their results. It partitions the file list into contiguous
// near-equal chunks, runs one unit per chunk, and reassembles output in
// dispatch order so results stay deterministic regardless of completion
// timing.
package proc

// Split partitions items into exactly n contiguous chunks. Each slot takes
// ceil(remaining/slotsLeft) items, so chunk sizes differ by at most one and
// larger chunks come first. Concatenating the chunks in order reproduces the
// input. With n greater than len(items) the trailing chunks are empty.
func Split(items []string, n int) [][]string {
	chunks := make([][]string, 0, n)
	rest := items
	for slot := 0; slot < n; slot++ {
		slotsLeft := n - slot
		size := (len(rest) + slotsLeft - 1) / slotsLeft
		chunks = append(chunks, rest[:size])
		rest = rest[size:]
	}
	return chunks
}
