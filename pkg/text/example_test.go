package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/rebrand/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	// The product rule runs first, so the author line needs no rule of its own
	rules := []text.ReplacementRule{
		{FromText: "Malti Tool Platform", ToText: "DvTools"},
		{FromText: "maltitoolplatform.com", ToText: "dvtools.in"},
	}

	frontmatter := `author: "Malti Tool Platform Team"
canonical: "https://maltitoolplatform.com/blog/json-formatter"`

	result, err := replacer.ReplaceText(context.Background(), strings.NewReader(frontmatter), rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(string(result.ModifiedContent))
	fmt.Printf("Replacements: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// author: "DvTools Team"
	// canonical: "https://dvtools.in/blog/json-formatter"
	// Replacements: 2
	// Was Modified: true
}

func ExampleSimpleTextReplacer_ReplaceText_alreadyRebranded() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "Malti Tool Platform", ToText: "DvTools"},
		{FromText: "maltitoolplatform.com", ToText: "dvtools.in"},
	}

	result, err := replacer.ReplaceText(context.Background(), strings.NewReader("Read more on dvtools.in"), rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Was Modified: false
}

func ExampleSimpleTextReplacer_ValidateRules() {
	replacer := text.NewSimpleTextReplacer()

	// Replacing "Tools" with "DvTools" would keep matching on every run
	rules := []text.ReplacementRule{
		{FromText: "maltitoolplatform.com", ToText: "dvtools.in"},
		{FromText: "Tools", ToText: "DvTools"},
	}

	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: to_text "DvTools" reintroduces from_text of rule 1
}
