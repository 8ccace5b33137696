package llm

// charsPerToken is the average number of characters per token.
// Real tokenizers vary, but 4 chars/token is a well-known approximation
// for English text and is close enough for logging prompt sizes.
const charsPerToken = 4

// EstimateTokens gives a rough token count for a prompt string.
func EstimateTokens(s string) int {
	return len(s) / charsPerToken
}
