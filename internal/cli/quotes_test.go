package cli

import (
	"context"
	"strings"
	"testing"
)

func TestQuotesAddListDelete(t *testing.T) {
	ctx := context.Background()
	mgr := newTempManager(t)
	stubDesktop(t)

	executeCommand(t, newQuotesCommand(ctx, mgr), "add", "--author", "Kent Beck", "--category", "code", "Make it work, make it right, make it fast.")
	executeCommand(t, newQuotesCommand(ctx, mgr), "add", "-a", "Steve Jobs", "-c", "wisdom", "Stay hungry, stay foolish.")

	out := executeCommand(t, newQuotesCommand(ctx, mgr), "list", "--search", "WISDOM")
	assertContains(t, out, "Stay hungry")
	assertNotContains(t, out, "Kent Beck")

	deleted := executeCommand(t, newQuotesCommand(ctx, mgr), "delete", "1")
	assertContains(t, deleted, "Quote deleted")

	out = executeCommand(t, newQuotesCommand(ctx, mgr), "list")
	assertNotContains(t, out, "Kent Beck")
	assertContains(t, out, "Steve Jobs")
}

func TestQuotesAddRequiresAuthor(t *testing.T) {
	_, err := runCommand(newQuotesCommand(context.Background(), newTempManager(t)), "add", "Anonymous wisdom")
	if err == nil || !strings.Contains(err.Error(), "Please fill in all fields") {
		t.Fatalf("err = %v", err)
	}
}
