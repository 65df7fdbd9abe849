package channels

import (
	"errors"
	"strings"
	"testing"

	"github.com/nextlevelbuilder/scrybot/internal/scryfall"
)

func TestFoundCaption(t *testing.T) {
	got := FoundCaption("Lightning Bolt", "https://scryfall.com/card/bolt")
	want := "Found Card Lightning Bolt: https://scryfall.com/card/bolt"
	if got != want {
		t.Errorf("FoundCaption = %q, want %q", got, want)
	}
}

func TestNoImageText(t *testing.T) {
	got := NoImageText("Obscure Card", "https://scryfall.com/card/obscure")
	if !strings.HasPrefix(got, "Found Card Obscure Card: ") {
		t.Errorf("missing caption prefix: %q", got)
	}
	if !strings.HasSuffix(got, "No image found.") {
		t.Errorf("missing no-image note: %q", got)
	}
}

func TestNotFoundText(t *testing.T) {
	tests := []struct {
		name       string
		nf         scryfall.NotFound
		want       string
		wantAbsent []string
	}{
		{
			name:       "no suggestions",
			nf:         scryfall.NotFound{Name: "Nonexistent Card XYZ"},
			want:       "Cannot find card 'Nonexistent Card XYZ'.",
			wantAbsent: []string{"Maybe you meant", "Other results"},
		},
		{
			name: "suggestions without overflow",
			nf: scryfall.NotFound{
				Name:        "Lighming Bolt",
				Suggestions: []string{"Lightning Bolt", "Lightning Axe", "Lightning Strike"},
				Total:       3,
			},
			want: "Cannot find card 'Lighming Bolt'.\n" +
				"Maybe you meant one of these:\n" +
				"`Lightning Bolt`\n`Lightning Axe`\n`Lightning Strike`",
			wantAbsent: []string{"Other results"},
		},
		{
			name: "suggestions with overflow",
			nf: scryfall.NotFound{
				Name:        "Lightning",
				Suggestions: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
				Total:       23,
			},
			want: "Cannot find card 'Lightning'.\n" +
				"Maybe you meant one of these:\n" +
				"`a`\n`b`\n`c`\n`d`\n`e`\n`f`\n`g`\n`h`\n`i`\n`j`\n" +
				"(13 Other results)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NotFoundText(tt.nf)
			if got != tt.want {
				t.Errorf("NotFoundText = %q, want %q", got, tt.want)
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("output should not contain %q: %q", absent, got)
				}
			}
		})
	}
}

func TestDiagnosticText(t *testing.T) {
	shape := DiagnosticText(&scryfall.ShapeError{Payload: `{"object":"ruling"}`})
	if !strings.Contains(shape, "Could not parse Scryfall API response") ||
		!strings.Contains(shape, `{"object":"ruling"}`) {
		t.Errorf("shape diagnostic = %q", shape)
	}

	api := DiagnosticText(&scryfall.APIError{Code: "bad_request", Details: "Invalid query"})
	if !strings.Contains(api, "Scryfall returned an error") || !strings.Contains(api, "Invalid query") {
		t.Errorf("api diagnostic = %q", api)
	}

	generic := DiagnosticText(errors.New("connection refused"))
	if !strings.Contains(generic, "Bot encountered error") || !strings.Contains(generic, "connection refused") {
		t.Errorf("generic diagnostic = %q", generic)
	}

	// The three kinds must stay distinguishable.
	if shape == api || api == generic || shape == generic {
		t.Error("diagnostics for distinct error kinds must differ")
	}
}

// A huge non-JSON body (e.g. an HTML gateway page) must not push the
// diagnostic past the platforms' message limits, or the reply itself fails.
func TestDiagnosticText_BoundsPayload(t *testing.T) {
	payload := strings.Repeat("<html>gateway timeout</html>", 1000)
	got := DiagnosticText(&scryfall.ShapeError{Payload: payload})

	if len(got) > 2000 {
		t.Errorf("diagnostic is %d chars, exceeds the smallest platform limit (2000)", len(got))
	}
	if !strings.Contains(got, "Could not parse Scryfall API response") {
		t.Errorf("diagnostic lost its prefix: %q", got[:80])
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated diagnostic should end with ellipsis: %q", got[len(got)-20:])
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("exactly10!", 10); got != "exactly10!" {
		t.Errorf("Truncate at limit = %q", got)
	}
	if got := Truncate("0123456789abc", 10); got != "0123456789..." {
		t.Errorf("Truncate over limit = %q", got)
	}
}
