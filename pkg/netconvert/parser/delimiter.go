package parser

// Candidates lists the delimiters considered by DetectDelimiter, in
// preference order.
var Candidates = []rune{',', '\t', ';', '|'}

// SampleSize is the number of non-blank lines inspected for detection.
const SampleSize = 50

// DetectDelimiter picks the field delimiter for lines.
// found is false when no candidate occurs in the sample; the returned
// delimiter is then ','.
func DetectDelimiter(lines []string) (delim rune, found bool) {
	sample := nonBlank(lines)
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	if d, ok := sniffDelimiter(sample); ok {
		return d, true
	}
	return frequencyDelimiter(sample)
}

// sniffDelimiter succeeds when a candidate occurs the same non-zero number of
// times on every sample line.
func sniffDelimiter(sample []string) (rune, bool) {
	if len(sample) == 0 {
		return 0, false
	}
	for _, d := range Candidates {
		want := countDelimiter(sample[0], d)
		if want == 0 {
			continue
		}
		consistent := true
		for _, line := range sample[1:] {
			if countDelimiter(line, d) != want {
				consistent = false
				break
			}
		}
		if consistent {
			return d, true
		}
	}
	return 0, false
}

// frequencyDelimiter picks the candidate with the most occurrences.
func frequencyDelimiter(sample []string) (rune, bool) {
	best, bestCount := ',', 0
	for _, d := range Candidates {
		n := 0
		for _, line := range sample {
			n += countDelimiter(line, d)
		}
		if n > bestCount {
			best, bestCount = d, n
		}
	}
	return best, bestCount > 0
}

// countDelimiter counts d outside double-quoted sections of line.
func countDelimiter(line string, d rune) int {
	n := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == d && !quoted:
			n++
		}
	}
	return n
}
