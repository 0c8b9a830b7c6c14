package clipper

import (
	"regexp"
	"strings"
)

// Task is one entry of a task list recovered from saved text.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

var (
	// Bullet or numbered line with an optional checkbox.
	taskMarkerRe = regexp.MustCompile(`^(?:[-*•]|\d+\.)\s*(?:\[([ xX])\]\s*)?(.+)$`)

	// Bare checkbox line.
	taskCheckboxRe = regexp.MustCompile(`^\[([ xX])\]\s*(.+)$`)

	taskDoneRe = regexp.MustCompile(`(?i)\[x\]|✓|✔|\bdone\b`)
)

// ParseTasks splits body into tasks. Lines carrying a task marker become
// tasks; when no line does, every non-empty line is an unchecked task.
//
// A task is completed when its checkbox is ticked, when the line carries a
// checkmark, or when it says "done".
func ParseTasks(body string) []Task {
	lines := nonEmptyLines(body)
	if len(lines) == 0 {
		return nil
	}

	var tasks []Task
	for _, line := range lines {
		box, text, ok := matchTaskLine(line)
		if !ok {
			continue
		}
		completed := box == "x" || taskDoneRe.MatchString(line)
		tasks = append(tasks, Task{Text: text, Completed: completed})
	}

	if len(tasks) == 0 {
		tasks = make([]Task, 0, len(lines))
		for _, line := range lines {
			tasks = append(tasks, Task{Text: line})
		}
	}
	return tasks
}

// matchTaskLine returns the checkbox state (" ", "x" or "" when absent) and
// the task text of a line in task-marker grammar.
func matchTaskLine(line string) (box, text string, ok bool) {
	if m := taskMarkerRe.FindStringSubmatch(line); m != nil {
		return strings.ToLower(m[1]), strings.TrimSpace(m[2]), true
	}
	if m := taskCheckboxRe.FindStringSubmatch(line); m != nil {
		return strings.ToLower(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// FormatTasks renders tasks back to checkbox bullet lines.
func FormatTasks(tasks []Task) string {
	var b strings.Builder
	for i, t := range tasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		if t.Completed {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// CompletedTasks counts the completed entries.
func CompletedTasks(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
