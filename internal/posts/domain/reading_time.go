package domain

import "strings"

// WordsPerMinute is the reading speed used by EstimateReadingTime.
const WordsPerMinute = 200

// CountWords counts whitespace-delimited words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateReadingTime returns ceil(words/200) over every heading and body
// in content. Empty content yields 0 minutes.
func EstimateReadingTime(content []ContentBlock) int {
	total := 0
	for _, block := range content {
		total += CountWords(block.Heading)
		total += CountWords(block.Body.PlainText())
	}
	return (total + WordsPerMinute - 1) / WordsPerMinute
}
