package channels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nextlevelbuilder/scrybot/internal/scryfall"
)

// FoundCaption is the shared caption for a matched card.
func FoundCaption(name, url string) string {
	return fmt.Sprintf("Found Card %s: %s", name, url)
}

// NoImageText is the reply for a matched card without any image
// representation: the normal caption plus a note, sent as plain text.
func NoImageText(name, url string) string {
	return FoundCaption(name, url) + " No image found."
}

// NotFoundText renders a NotFound outcome: the "cannot find" line, the
// suggestion list as inline code spans, and an overflow count when the API
// reported more candidates than the list shows. Both Telegram Markdown and
// Discord markdown read backticks as code spans.
func NotFoundText(nf scryfall.NotFound) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cannot find card '%s'.", nf.Name)

	if len(nf.Suggestions) == 0 {
		return sb.String()
	}

	sb.WriteString("\nMaybe you meant one of these:")
	for _, name := range nf.Suggestions {
		fmt.Fprintf(&sb, "\n`%s`", name)
	}

	if other := nf.Total - len(nf.Suggestions); other > 0 {
		fmt.Fprintf(&sb, "\n(%d Other results)", other)
	}
	return sb.String()
}

// diagnosticPayloadMax caps quoted payloads in diagnostics so the reply stays
// well under Telegram's 4096-char message limit (Discord's is 2000).
const diagnosticPayloadMax = 1500

// DiagnosticText renders a resolution error as a short user-visible reply,
// one distinct form per error kind.
func DiagnosticText(err error) string {
	var shapeErr *scryfall.ShapeError
	if errors.As(err, &shapeErr) {
		return fmt.Sprintf("Could not parse Scryfall API response: %s", Truncate(shapeErr.Payload, diagnosticPayloadMax))
	}
	var apiErr *scryfall.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Scryfall returned an error: %s", apiErr.Error())
	}
	return fmt.Sprintf("Bot encountered error: %s", err)
}

// Truncate shortens s to maxLen characters, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
