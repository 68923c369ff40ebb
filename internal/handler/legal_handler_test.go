package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func legalRequest(t *testing.T, h *LegalHandler, docType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/legal/"+docType, nil)
	req.SetPathValue("type", docType)
	rec := httptest.NewRecorder()
	h.Legal(rec, req)
	return rec
}

func TestLegal_ServesDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "terms.md"), []byte("# Terms of Service\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewLegalHandler(LegalConfig{DocsDir: dir})

	rec := legalRequest(t, h, "terms")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Terms of Service") {
		t.Errorf("expected document content, got %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("expected markdown content type, got %q", ct)
	}
}

func TestLegal_UnknownType(t *testing.T) {
	h := NewLegalHandler(LegalConfig{DocsDir: t.TempDir()})

	for _, docType := range []string{"refunds", "imprint"} {
		rec := legalRequest(t, h, docType)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 for non-allowlisted type %q, got %d", docType, rec.Code)
		}
	}
}

func TestLegal_MissingFile(t *testing.T) {
	h := NewLegalHandler(LegalConfig{DocsDir: t.TempDir()})

	rec := legalRequest(t, h, "privacy")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing document, got %d", rec.Code)
	}
}

func TestLegal_PathTraversal(t *testing.T) {
	h := NewLegalHandler(LegalConfig{DocsDir: t.TempDir()})

	for _, docType := range []string{"../secrets", "a/b", `a\b`} {
		rec := legalRequest(t, h, docType)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %q, got %d", docType, rec.Code)
		}
	}
}
