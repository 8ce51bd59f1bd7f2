package parse

// Segment partitions the token sequence into contiguous, non-overlapping
// chunks, one per record. A chunk spans from one record-start token up to
// (but excluding) the next, or to the end of the sequence. Chunks keep
// discovery order; concatenating them reproduces the token sequence from the
// first record start onward. Tokens before the first record start are
// discarded, matching the source dumps where any preamble is noise.
//
// Zero record starts yield zero chunks, which is not an error.
func Segment(tokens []string) [][]string {
	var starts []int
	for i, tok := range tokens {
		if IsRecordStart(tok) {
			starts = append(starts, i)
		}
	}

	chunks := make([][]string, 0, len(starts))
	for i, start := range starts {
		end := len(tokens)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		chunks = append(chunks, tokens[start:end])
	}
	return chunks
}
