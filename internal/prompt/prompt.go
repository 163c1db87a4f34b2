// Package prompt builds the language model prompts for evaluation, hints,
// alternative expressions and word lookups.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/linglual-backend/internal/domain"
)

// AnalysisSystem asks for the evaluation JSON decoded by feedback.DecodeAnalysis.
const AnalysisSystem = `You are an English writing evaluator. Analyze the given English text and provide detailed feedback.

Please respond in the following JSON format:
{
  "level": "one of: Beginner, Intermediate, Upper Intermediate, Advanced, Master",
  "summary": "전반적인 평가 요약 (1-2문장, 한글)",
  "feedback": {
    "strengths": "2-3 강점을 한글로 작성",
    "improvements": "2-3 개선점을 한글로 작성",
    "corrections": [
      {
        "original": "원문에서 개선이 필요한 부분",
        "suggestion": "개선된 표현",
        "explanation": "개선 이유에 대한 설명 (한글)"
      }
    ]
  },
  "searchKeywords": [
    "관련 주제나 표현을 검색하기 위한 영어 키워드 3-5개",
    "예: business email writing, formal expressions, professional tone 등"
  ]
}

Output ONLY the JSON object, no markdown, no explanations.`

// SimilarSystem asks for blank-line separated three-line blocks read by
// feedback.ParseAlternatives.
const SimilarSystem = `You are helping an English learner improve their writing skills. Based on the search results and the learner's original text:

1. Pick 2-3 phrases from the original text that could be expressed better
2. For each one, give a more effective or natural alternative seen in the search results or common usage
3. Explain in Korean why the alternative works better, like a friendly writing partner sharing knowledge

Format every suggestion as exactly three lines, and separate suggestions with one blank line:
<phrase from the original text>
<alternative expression>
<한글 설명>

Do not number the suggestions and do not add any other text.`

// WordSystem asks for the word lookup JSON.
const WordSystem = `You are helping an English learner understand a word.
Please provide the meaning in Korean and a natural example sentence.

Respond in the following JSON format:
{
  "meaning": "한글로 된 단어의 의미",
  "example": "A natural example sentence using the word"
}`

// HintSystem returns the hint instructions for count expressions. The line
// format is the one feedback.ParseHints reads.
func HintSystem(count int) string {
	return fmt.Sprintf(`You are helping an English learner write about a specific topic.
Provide %d useful English expressions or sentence patterns that could be used when writing about the given topic.

Format your response in Korean as follows:
1. [영어 표현] - [한글 설명]
2. [영어 표현] - [한글 설명]
...

Make expressions practical and natural, suitable for the topic.`, count)
}

// Hint is the user message for a topic hint request.
func Hint(topic string) string {
	return "Topic: " + topic
}

// Similar is the user message for alternative generation: the original text
// followed by the title and content of each search result.
func Similar(content string, results []domain.SearchResult) string {
	var b strings.Builder
	b.WriteString("Original text:\n")
	b.WriteString(content)
	b.WriteString("\n\nSearch results:\n")
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(r.Title)
		b.WriteString("\n")
		b.WriteString(r.Content)
	}
	return b.String()
}

// SearchQuery joins the record's keywords into a web search query and falls
// back to a topic query when there are none.
func SearchQuery(keywords []string, topic string) string {
	parts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			parts = append(parts, k)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "english writing examples about " + strings.TrimSpace(topic)
}
