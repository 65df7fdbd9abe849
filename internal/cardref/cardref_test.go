package cardref

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single reference",
			text: "I cast [[Lightning Bolt]]",
			want: []string{"Lightning Bolt"},
		},
		{
			name: "multiple references in order",
			text: "[[Delver of Secrets]] into [[Brainstorm]]",
			want: []string{"Delver of Secrets", "Brainstorm"},
		},
		{
			name: "adjacent references",
			text: "[[a]][[b]]",
			want: []string{"a", "b"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no brackets",
			text: "no cards here",
			want: nil,
		},
		{
			name: "single brackets ignored",
			text: "[Lightning Bolt]",
			want: nil,
		},
		{
			name: "unclosed reference ignored",
			text: "[[Lightning Bolt",
			want: nil,
		},
		{
			name: "empty reference ignored",
			text: "[[]]",
			want: nil,
		},
		{
			name: "unbalanced then valid",
			text: "[[broken [[Lightning Bolt]]",
			want: []string{"broken [[Lightning Bolt"},
		},
		{
			name: "whitespace reference kept",
			text: "[[ ]]",
			want: []string{" "},
		},
		{
			name: "punctuation and unicode",
			text: "[[Jötun Grunt]] and [[Ach! Hans, Run!]]",
			want: []string{"Jötun Grunt", "Ach! Hans, Run!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
