// Package content converts a recipe's structured body (ingredient groups
// and instruction steps) to and from the text column it is stored in.
package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Ingredient is a single ingredient line.
type Ingredient struct {
	Text string `json:"text"`
}

// IngredientGroup is an ordered list of ingredients with an optional heading.
type IngredientGroup struct {
	Group string       `json:"group,omitempty"`
	Items []Ingredient `json:"items"`
}

// Instruction is one preparation step.
type Instruction struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// StructuredContent is the decoded recipe body.
type StructuredContent struct {
	Ingredients  []IngredientGroup `json:"ingredients"`
	Instructions []Instruction     `json:"instructions"`
}

// DecodeError reports stored content that is present but not well-formed.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed recipe content: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses the stored text. A nil, blank or JSON null input yields nil content
// and no error. Missing ingredients/instructions decode as empty slices.
func Decode(raw *string) (*StructuredContent, error) {
	if raw == nil {
		return nil, nil
	}
	if trimmed := strings.TrimSpace(*raw); trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var c StructuredContent
	if err := json.Unmarshal([]byte(*raw), &c); err != nil {
		return nil, &DecodeError{Raw: *raw, Err: err}
	}
	c.normalize()
	return &c, nil
}

// Encode renders content for storage. Nil content encodes to nil so the
// column stays NULL.
func Encode(c *StructuredContent) (*string, error) {
	if c == nil {
		return nil, nil
	}

	normalized := *c
	normalized.normalize()

	data, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe content: %w", err)
	}
	s := string(data)
	return &s, nil
}

func (c *StructuredContent) normalize() {
	if c.Ingredients == nil {
		c.Ingredients = []IngredientGroup{}
	}
	for i := range c.Ingredients {
		if c.Ingredients[i].Items == nil {
			c.Ingredients[i].Items = []Ingredient{}
		}
	}
	if c.Instructions == nil {
		c.Instructions = []Instruction{}
	}
}
