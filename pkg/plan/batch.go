package plan

// Batch partitions args into consecutive chunks of at most size elements,
// preserving order. The final chunk may be short. Each chunk becomes the
// argument set of one pane.
func Batch(args []string, size int) [][]string {
	if len(args) == 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}

	batches := make([][]string, 0, (len(args)+size-1)/size)
	for start := 0; start < len(args); start += size {
		end := start + size
		if end > len(args) {
			end = len(args)
		}
		batches = append(batches, args[start:end])
	}
	return batches
}
