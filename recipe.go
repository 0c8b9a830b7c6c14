package clipper

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Recipe is the ingredient and instruction structure recovered from saved
// text. Both lists empty means the text is not a recognizable recipe and
// should be shown as-is.
type Recipe struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prepTime,omitempty"`
	CookTime     string   `json:"cookTime,omitempty"`
	Servings     string   `json:"servings,omitempty"`
}

// Empty reports whether no ingredients or instructions were found.
func (r *Recipe) Empty() bool {
	return len(r.Ingredients) == 0 && len(r.Instructions) == 0
}

type recipeSection int

const (
	sectionNone recipeSection = iota
	sectionIngredients
	sectionInstructions
)

// Lines longer than this outside a section read as instructions, and
// quantity lines must be at most this long to read as ingredients.
const recipeLongLine = 50

var (
	ingredientHeaderRe  = regexp.MustCompile(`(?i)ingredient`)
	instructionHeaderRe = regexp.MustCompile(`(?i)instruction|direction|method`)

	bulletRe    = regexp.MustCompile(`^[•\-*]\s*`)
	numeralRe   = regexp.MustCompile(`^\d+[.)]\s*`)
	quantityRe  = regexp.MustCompile(`^(?:\d|[½¼¾⅓⅔⅛])`)
	measureRe   = regexp.MustCompile(`(?i)^\d+(?:[./]\d+)?\s*(?:cups?|tbsp|tsp|oz|lbs?|g|kg|ml|l)\b`)
	stepLabelRe = regexp.MustCompile(`(?i)^step\s+\d+[:.]?\s*`)

	prepTimeRe = regexp.MustCompile(`(?i)\b(?:prep|preparation)(?:\s+time)?[:\s]+(\d+[ \t\w]*)`)
	cookTimeRe = regexp.MustCompile(`(?i)\b(?:cook|baking)(?:\s+time)?[:\s]+(\d+[ \t\w]*)`)
	servingsRe = regexp.MustCompile(`(?i)\b(?:serves|servings|yields)[:\s]+(\d+)`)
)

// ParseRecipe recovers ingredient and instruction lists from body.
//
// Short lines naming ingredients, instructions, directions or a method
// switch the active section; inside a section only list-shaped lines are
// kept. Outside any section short quantity lines become ingredients and
// numbered or long lines become instructions.
func ParseRecipe(body string) Recipe {
	recipe := Recipe{
		Ingredients:  []string{},
		Instructions: []string{},
		PrepTime:     firstGroup(prepTimeRe, body),
		CookTime:     firstGroup(cookTimeRe, body),
		Servings:     firstGroup(servingsRe, body),
	}

	section := sectionNone
	for _, line := range nonEmptyLines(body) {
		if isRecipeHeader(line, ingredientHeaderRe) {
			section = sectionIngredients
			continue
		}
		if isRecipeHeader(line, instructionHeaderRe) {
			section = sectionInstructions
			continue
		}

		switch section {
		case sectionIngredients:
			if bulletRe.MatchString(line) || quantityRe.MatchString(line) {
				recipe.Ingredients = append(recipe.Ingredients, bulletRe.ReplaceAllString(line, ""))
			}
		case sectionInstructions:
			if bulletRe.MatchString(line) || numeralRe.MatchString(line) || stepLabelRe.MatchString(line) {
				recipe.Instructions = append(recipe.Instructions, stripStepMarker(line))
			}
		default:
			switch {
			case measureRe.MatchString(line) && utf8.RuneCountInString(line) <= recipeLongLine:
				recipe.Ingredients = append(recipe.Ingredients, line)
			case numeralRe.MatchString(line) || utf8.RuneCountInString(line) > recipeLongLine:
				recipe.Instructions = append(recipe.Instructions, stripStepMarker(line))
			}
		}
	}
	return recipe
}

// isRecipeHeader reports whether line is a short section heading matching re.
// List items are never headings, so "1. Mix the dry ingredients." stays a step.
func isRecipeHeader(line string, re *regexp.Regexp) bool {
	if utf8.RuneCountInString(line) > 40 || isRecipeListItem(line) {
		return false
	}
	return re.MatchString(line)
}

func isRecipeListItem(line string) bool {
	return bulletRe.MatchString(line) || numeralRe.MatchString(line) || stepLabelRe.MatchString(line)
}

func stripStepMarker(line string) string {
	line = numeralRe.ReplaceAllString(line, "")
	line = bulletRe.ReplaceAllString(line, "")
	return stepLabelRe.ReplaceAllString(line, "")
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
