package models

import "testing"

func TestCaseRecord_AttachTranscript(t *testing.T) {
	c := &CaseRecord{Href: "/case/1"}

	c.AttachTranscript("")

	if c.HasTranscript {
		t.Error("empty transcript should not mark the record")
	}

	c.AttachTranscript("Hello Court")
	c.AttachTranscript("Second argument")

	if !c.HasTranscript {
		t.Error("HasTranscript = false, want true")
	}

	if got := c.Transcript(); got != "Hello Court Second argument" {
		t.Errorf("Transcript() = %q, want %q", got, "Hello Court Second argument")
	}
}

func TestRecord_Eligible(t *testing.T) {
	withText := &CaseRecord{}
	withText.AttachTranscript("text")

	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{"Skipped no match", Skipped(SkipNoCSVMatch, "/case/x"), false},
		{"Skipped winner", Skipped(SkipWinnerMissingCSV, ""), false},
		{"Joined without transcript", Joined(&CaseRecord{}), false},
		{"Joined with transcript", Joined(withText), true},
		{"Zero record", Record{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Eligible(); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewOutputCase(t *testing.T) {
	c := &CaseRecord{
		Href:        "/case/1",
		CaseName:    "Brown v. Board",
		Year:        "1954",
		FirstParty:  "Brown",
		SecondParty: "Board",
		Facts:       "facts",
		Decision:    true,
	}
	c.AttachTranscript("a")
	c.AttachTranscript("b")

	out := NewOutputCase(c)

	if out.Transcript != "a b" {
		t.Errorf("Transcript = %q, want %q", out.Transcript, "a b")
	}

	if out.CaseName != "Brown v. Board" || out.Year != "1954" || !out.Decision {
		t.Errorf("unexpected projection: %+v", out)
	}
}
