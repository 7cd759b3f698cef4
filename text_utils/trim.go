package text_utils

import "strings"

// sentenceBoundaryRatio is the tail fraction of a word-capped text in
// which a sentence terminator is close enough to cut at.
const sentenceBoundaryRatio = 0.8

// LimitWords caps text at maxWords whitespace-delimited words so the
// synthesized audio stays near the target duration. When the cut would
// land mid-sentence, the text is shortened to the last sentence
// terminator if one falls within the final 20% of the capped text;
// otherwise an ellipsis marks the cut.
func LimitWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}

	limited := strings.Join(words[:maxWords], " ")

	lastPeriod := strings.LastIndex(limited, ".")
	lastExclamation := strings.LastIndex(limited, "!")
	lastQuestion := strings.LastIndex(limited, "?")

	lastSentenceEnd := lastPeriod
	if lastExclamation > lastSentenceEnd {
		lastSentenceEnd = lastExclamation
	}
	if lastQuestion > lastSentenceEnd {
		lastSentenceEnd = lastQuestion
	}

	if float64(lastSentenceEnd) > float64(len(limited))*sentenceBoundaryRatio {
		return limited[:lastSentenceEnd+1]
	}
	return limited + "..."
}
