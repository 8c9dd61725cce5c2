package resume

import "testing"

func TestExtractNameFromLabeledLine(t *testing.T) {
	t.Parallel()

	text := "Resume\nName: John Smith\njohn@example.com"

	contact := ExtractContact(text)
	if contact.Name != "John Smith" {
		t.Fatalf("expected John Smith, got %q", contact.Name)
	}
}

func TestExtractNameFallbackHeuristic(t *testing.T) {
	t.Parallel()

	text := "Jane Doe\nSoftware developer with 5 years of experience building things"

	contact := ExtractContact(text)
	if contact.Name != "Jane Doe" {
		t.Fatalf("expected Jane Doe, got %q", contact.Name)
	}
}

func TestExtractNameNotFound(t *testing.T) {
	t.Parallel()

	text := "summary of a resume without any capitalized short lines at all\ncontact below"

	contact := ExtractContact(text)
	if contact.Name != "" {
		t.Fatalf("expected empty name, got %q", contact.Name)
	}
}

func TestExtractNameIgnoresLinesBeyondPrefix(t *testing.T) {
	t.Parallel()

	text := ""
	for i := 0; i < nameLinePrefix; i++ {
		text += "lowercase filler line that is definitely not a candidate name here\n"
	}
	text += "Name: John Smith\n"

	contact := ExtractContact(text)
	if contact.Name != "" {
		t.Fatalf("expected name outside the prefix to be ignored, got %q", contact.Name)
	}
}

func TestExtractEmail(t *testing.T) {
	t.Parallel()

	contact := ExtractContact("reach me at john.smith-dev@example.co.uk anytime")
	if contact.Email != "john.smith-dev@example.co.uk" {
		t.Fatalf("unexpected email: %q", contact.Email)
	}
}

func TestExtractPhone(t *testing.T) {
	t.Parallel()

	contact := ExtractContact("call +1 (555) 123-4567 during office hours")
	if contact.Phone == "" {
		t.Fatal("expected a phone match")
	}
	if contact.Phone[0] != '+' {
		t.Fatalf("expected match to start at the plus sign, got %q", contact.Phone)
	}
}

func TestExtractContactMissingEverything(t *testing.T) {
	t.Parallel()

	contact := ExtractContact("")
	if contact.Name != "" || contact.Email != "" || contact.Phone != "" {
		t.Fatalf("expected empty contact, got %+v", contact)
	}
}
