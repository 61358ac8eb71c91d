package briefing

import "fmt"

const promptTemplate = `You are a strategic analyst preparing a briefing from %d news articles collected on a personal dashboard.

Write a concise strategic summary in markdown:
- Open with a short overview of the most important developments.
- Group related stories into themes, each under its own heading.
- Point out implications and signals worth watching.
- Refer to articles by title where useful and do not add facts that are not in the text.

Articles:

%s`

// BuildPrompt embeds the extracted article block and its article count in the
// fixed briefing instructions.
func BuildPrompt(articlesText string, count int) string {
	return fmt.Sprintf(promptTemplate, count, articlesText)
}
