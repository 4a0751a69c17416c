package todo

import (
	"strings"
	"testing"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		comment string
		input   string
		want    []Line
	}{
		{
			comment: "pick with hash and content",
			input:   "pick aaa c1\n",
			want:    []Line{NewLine(ActionPick, "aaa", "c1")},
		},
		{
			comment: "skips comments and blank lines",
			input:   "# comment\npick aaa c1\n\n  \nsquash bbb c2\n",
			want:    []Line{NewLine(ActionPick, "aaa", "c1"), NewLine(ActionSquash, "bbb", "c2")},
		},
		{
			comment: "break takes no operand",
			input:   "break\n",
			want:    []Line{NewLine(ActionBreak, "", "")},
		},
		{
			comment: "exec takes content only",
			input:   "exec make test\n",
			want:    []Line{NewLine(ActionExec, "", "make test")},
		},
		{
			comment: "label takes content only",
			input:   "label my-label\n",
			want:    []Line{NewLine(ActionLabel, "", "my-label")},
		},
	}

	for _, tt := range tests {
		lines, err := ParseLines(strings.NewReader(tt.input), "#")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.comment, err)
		}
		if len(lines) != len(tt.want) {
			t.Fatalf("%s: got %d lines, want %d", tt.comment, len(lines), len(tt.want))
		}
		for i := range lines {
			if lines[i].Action() != tt.want[i].Action() || lines[i].Hash() != tt.want[i].Hash() || lines[i].Content() != tt.want[i].Content() {
				t.Errorf("%s: line %d = %+v, want %+v", tt.comment, i, lines[i], tt.want[i])
			}
		}
	}
}

func TestParseLinesInvalidAction(t *testing.T) {
	_, err := ParseLines(strings.NewReader("bogus aaa c1\n"), "#")
	if err == nil {
		t.Fatal("expected error for invalid action")
	}
}

func TestToLineRoundTrip(t *testing.T) {
	tests := []struct {
		comment string
		line    Line
		want    string
	}{
		{"pick", NewLine(ActionPick, "aaa", "c1"), "pick aaa c1"},
		{"pick no content", NewLine(ActionPick, "aaa", ""), "pick aaa"},
		{"break", NewLine(ActionBreak, "", ""), "break"},
		{"exec", NewLine(ActionExec, "", "make test"), "exec make test"},
	}
	for _, tt := range tests {
		if got := tt.line.ToLine(); got != tt.want {
			t.Errorf("%s: ToLine() = %q, want %q", tt.comment, got, tt.want)
		}
	}
}
