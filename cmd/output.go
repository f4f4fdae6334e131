package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"
	"github.com/tetreum/tviso/pkg/tviso"
)

// formatResponse renders a response as indented JSON, or through the
// template when one is given. Template fields are the JSON keys, e.g.
// "{{.name}} ({{.year}})". With width > 0 every output line is padded
// or truncated to that display width.
func formatResponse(resp *tviso.Response, templateStr string, width int) (string, error) {
	if templateStr == "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, resp.Raw, "", "  "); err != nil {
			return "", fmt.Errorf("invalid JSON response: %w", err)
		}
		return buf.String(), nil
	}

	tmpl, err := template.New("output").Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}

	var data interface{}
	if err := resp.Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	output := buf.String()
	if width <= 0 {
		return output, nil
	}

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	for i, line := range lines {
		lines[i] = padToWidth(line, width)
	}
	return strings.Join(lines, "\n"), nil
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

		// Wide runes can leave the result a column short
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	}

	return text + strings.Repeat(" ", width-currentWidth)
}
