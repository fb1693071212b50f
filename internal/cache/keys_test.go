package cache

import "testing"

func TestKeys(t *testing.T) {
	if got := ProfileKey("a@b.com"); got != "user:profile:a@b.com" {
		t.Fatalf("unexpected profile key %q", got)
	}
	if got := SummaryKey("a@b.com"); got != "fitness:summary:a@b.com" {
		t.Fatalf("unexpected summary key %q", got)
	}
}
