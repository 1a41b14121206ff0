package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFromBytesPlainText(t *testing.T) {
	got, err := FromBytes(context.Background(), []byte("  some answer text \n"), "text/plain; charset=utf-8", "answer.txt")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got != "some answer text" {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
}

func TestFromBytesDocx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>first paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>second paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDocx(t, doc)

	got, err := FromBytes(context.Background(), data,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "answer.docx")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !strings.Contains(got, "first paragraph") || !strings.Contains(got, "second paragraph") {
		t.Fatalf("expected paragraph text, got %q", got)
	}
}

func TestFromBytesZipMimeNormalizedToDocx(t *testing.T) {
	// Browsers often upload .docx as application/zip; the entry list decides.
	doc := `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>zip upload</w:t></w:r></w:p></w:body></w:document>`
	data := buildDocx(t, doc)

	got, err := FromBytes(context.Background(), data, "application/zip", "answer.docx")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !strings.Contains(got, "zip upload") {
		t.Fatalf("expected docx text, got %q", got)
	}
}

func TestFromBytesUnsupportedMime(t *testing.T) {
	if _, err := FromBytes(context.Background(), []byte{0x89, 0x50}, "image/png", "photo.png"); err == nil {
		t.Fatal("expected error for unsupported mime type")
	}
}

func TestFromBytesDocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	_, _ = w.Write([]byte("<x/>"))
	_ = zw.Close()

	_, err := FromBytes(context.Background(), buf.Bytes(),
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "answer.docx")
	if err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestStripDocxXMLBreaksParagraphs(t *testing.T) {
	raw := `<d><p><t>one</t></p><p><t>two</t></p></d>`
	got := stripDocxXML(raw)
	if got != "one\ntwo" {
		t.Fatalf("expected paragraph breaks, got %q", got)
	}
}
