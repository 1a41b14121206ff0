package local

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"
)

var keyPattern = regexp.MustCompile(`^\d{20}_answer\.txt$`)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	key, size, mimeType, err := store.Save(context.Background(), "answer.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("expected size %d, got %d", len("hello world"), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime, got %q", mimeType)
	}
	if !keyPattern.MatchString(key) {
		t.Fatalf("expected timestamped key, got %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != "hello world" {
		t.Fatalf("expected round-tripped body, got %q", body)
	}
}

func TestSaveSanitizesSlashes(t *testing.T) {
	store := New(t.TempDir())

	key, _, _, err := store.Save(context.Background(), "a/b\\c.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.ContainsAny(key, "/\\") {
		t.Fatalf("expected flattened key, got %q", key)
	}
}

func TestSaveRejectsTraversalNames(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "../escape.txt", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for traversal file name")
	}
}

func TestOpenRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../outside", "/etc/passwd"} {
		if _, err := store.Open(context.Background(), key); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestSaveLargeBodyBeyondSniffWindow(t *testing.T) {
	store := New(t.TempDir())
	payload := strings.Repeat("a", 2048)

	key, size, _, err := store.Save(context.Background(), "big.txt", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != 2048 {
		t.Fatalf("expected size 2048, got %d", size)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	body, _ := io.ReadAll(rc)
	if len(body) != 2048 {
		t.Fatalf("expected 2048 bytes back, got %d", len(body))
	}
}
