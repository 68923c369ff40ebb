package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// allowedLegalTypes is the allowlist of legal document names the site's
// legal pages may request via GET /api/legal/{type}.
var allowedLegalTypes = map[string]bool{
	"terms":      true,
	"privacy":    true,
	"disclaimer": true,
}

// LegalConfig holds configuration for the LegalHandler.
type LegalConfig struct {
	// DocsDir is the directory from which legal Markdown files are
	// read. Corresponds to the LEGAL_DOCS_DIR environment variable.
	DocsDir string
}

// LegalHandler serves the static legal documents shown on the site.
type LegalHandler struct {
	cfg LegalConfig
}

func NewLegalHandler(cfg LegalConfig) *LegalHandler {
	return &LegalHandler{cfg: cfg}
}

// Legal handles GET /api/legal/{type}. Responds 404 for unknown or
// missing documents and rejects path traversal attempts with 400.
func (h *LegalHandler) Legal(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("type")

	if strings.ContainsAny(docType, `/\`) || strings.Contains(docType, "..") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !allowedLegalTypes[docType] {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	absDir, err := filepath.Abs(h.cfg.DocsDir)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	filePath := filepath.Join(absDir, docType+".md")

	// The allowlist already constrains the name; confirm the resolved
	// path stayed inside DocsDir anyway.
	if !strings.HasPrefix(filePath, absDir+string(filepath.Separator)) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	doc, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(doc)
}
