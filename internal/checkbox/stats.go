package checkbox

import "strings"

// Controls lists every control tag in text, in document order.
func Controls(text string) []Control {
	var controls []Control
	for i, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "<input") {
			continue
		}
		for _, m := range controlRe.FindAllStringSubmatch(line, -1) {
			controls = append(controls, Control{
				ID:      m[2],
				Checked: m[1] == MarkerChecked,
				Line:    i,
				Raw:     m[0],
			})
		}
	}
	return controls
}

// GetStats calculates completion statistics over the controls of text.
func GetStats(text string) Stats {
	controls := Controls(text)
	total := len(controls)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, c := range controls {
		if c.Checked {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
