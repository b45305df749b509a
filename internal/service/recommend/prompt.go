package recommend

import (
	"fmt"
	"strings"

	"github.com/Taichi-iskw/cheta/internal/model"
)

// answerExample is the output shape shown to the model
const answerExample = `{
  "top_video": {
    "title": "...",
    "url": "...",
    "reason": "..."
  }
}`

// BuildPrompt renders the ranking instruction for videos and preferences.
// Output depends only on its inputs. Titles and descriptions are embedded as is.
func BuildPrompt(videos []*model.Video, preferences string) string {
	var b strings.Builder

	b.WriteString("You are a personal recommendation assistant.\n")
	fmt.Fprintf(&b, "My preferences: %s\n\n", preferences)
	b.WriteString("Rate these reaction videos and select the one I am most likely to enjoy.\n")
	b.WriteString("Return your answer in valid JSON format:\n")
	b.WriteString(answerExample)
	b.WriteString("\n")

	for i, v := range videos {
		fmt.Fprintf(&b, "\n%d. Title: %s\n", i+1, v.Title)
		fmt.Fprintf(&b, "Description: %s\n", v.Description)
		fmt.Fprintf(&b, "URL: %s\n", v.URL)
	}

	return b.String()
}
