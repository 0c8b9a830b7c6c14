package clipper

import (
	"fmt"
	"strings"
)

// FormatItem renders a saved item for display. Text items that still read as
// task lists are shown as a checklist with progress, bodies that parse as a
// recipe get ingredient and instruction sections, and everything else is
// shown as saved.
func FormatItem(item *Item) string {
	var b strings.Builder

	title := item.Title
	if title == "" {
		title = item.SourceURL
	}
	b.WriteString("# " + title + "\n")
	if item.SourceURL != "" && item.SourceURL != title {
		b.WriteString("Source: " + item.SourceURL + "\n")
	}
	b.WriteString("Category: " + string(item.Category) + "\n")
	for _, k := range MetadataKeys(item.Category) {
		if v := item.Metadata[k]; v != "" && k != MetaDescription {
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
	}
	b.WriteString("\n")
	b.WriteString(formatBody(item))
	return strings.TrimRight(b.String(), "\n")
}

func formatBody(item *Item) string {
	if item.Category == CategoryText && IsTaskList(item.Body) {
		return formatTasks(ParseTasks(item.Body))
	}
	if recipe := ParseRecipe(item.Body); len(recipe.Ingredients) > 0 && len(recipe.Instructions) > 0 {
		return formatRecipe(recipe)
	}
	return item.Body
}

func formatTasks(tasks []Task) string {
	return fmt.Sprintf("Tasks (%d/%d done)\n%s", CompletedTasks(tasks), len(tasks), FormatTasks(tasks))
}

func formatRecipe(r Recipe) string {
	var parts []string

	var info []string
	if r.PrepTime != "" {
		info = append(info, "Prep: "+r.PrepTime)
	}
	if r.CookTime != "" {
		info = append(info, "Cook: "+r.CookTime)
	}
	if r.Servings != "" {
		info = append(info, "Serves: "+r.Servings)
	}
	if len(info) > 0 {
		parts = append(parts, strings.Join(info, " | "))
	}

	var ing strings.Builder
	ing.WriteString("## Ingredients")
	for _, s := range r.Ingredients {
		ing.WriteString("\n- " + s)
	}
	parts = append(parts, ing.String())

	var ins strings.Builder
	ins.WriteString("## Instructions")
	for i, s := range r.Instructions {
		fmt.Fprintf(&ins, "\n%d. %s", i+1, s)
	}
	parts = append(parts, ins.String())

	return strings.Join(parts, "\n\n")
}
