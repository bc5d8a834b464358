package cli

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestNotesSetFromStdin(t *testing.T) {
	ctx := context.Background()
	mgr := newTempManager(t)
	stubDesktop(t)

	cmd := newNotesCommand(ctx, mgr)
	cmd.SetIn(strings.NewReader("line one\nline two"))
	out := executeCommand(t, cmd, "set")
	assertContains(t, out, "Notes saved (17 characters)")

	show := executeCommand(t, newNotesCommand(ctx, mgr), "show")
	assertContains(t, show, "line one\nline two")
	assertContains(t, show, "17 characters")
}

func TestNotesClearAsksFirst(t *testing.T) {
	ctx := context.Background()
	mgr := newTempManager(t)
	stubDesktop(t)

	executeCommand(t, newNotesCommand(ctx, mgr), "set", "draft")

	out := executeCommand(t, newNotesCommand(ctx, mgr), "clear")
	assertContains(t, out, "Notes kept")
	assertContains(t, executeCommand(t, newNotesCommand(ctx, mgr), "show"), "draft")

	confirm = func(io.Reader, io.Writer, string) bool { return true }
	out = executeCommand(t, newNotesCommand(ctx, mgr), "clear")
	assertContains(t, out, "Notes cleared")

	out = executeCommand(t, newNotesCommand(ctx, mgr), "clear", "--yes")
	assertContains(t, out, "Notes are already empty")
}

func TestNotesCopy(t *testing.T) {
	ctx := context.Background()
	mgr := newTempManager(t)
	clip, _ := stubDesktop(t)

	if _, err := runCommand(newNotesCommand(ctx, mgr), "copy"); err == nil || !strings.Contains(err.Error(), "Nothing to copy") {
		t.Fatalf("copy empty err = %v", err)
	}

	executeCommand(t, newNotesCommand(ctx, mgr), "set", "agenda")
	out := executeCommand(t, newNotesCommand(ctx, mgr), "copy")
	assertContains(t, out, "Copied to clipboard!")
	if clip.text != "agenda" {
		t.Fatalf("clipboard = %q, want agenda", clip.text)
	}
}
