package textextract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Result is the plain text extracted from one document. A ZIP upload expands
// into one Result per nested PDF/DOCX entry.
type Result struct {
	Filename string
	FileType string
	Text     string
}

// Extract dispatches on the filename extension. Failures inside a ZIP are
// collected per entry so one corrupt member does not discard the rest.
func Extract(filename string, data []byte) ([]Result, []error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return nil, []error{fmt.Errorf("%s: %w", filename, err)}
		}
		return []Result{{Filename: filename, FileType: "PDF", Text: text}}, nil
	case ".docx":
		text, err := docxText(data)
		if err != nil {
			return nil, []error{fmt.Errorf("%s: %w", filename, err)}
		}
		return []Result{{Filename: filename, FileType: "DOCX", Text: text}}, nil
	case ".zip":
		return zipEntries(filename, data)
	default:
		return nil, []error{fmt.Errorf("%s: unsupported file type", filename)}
	}
}

func pdfText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf failed: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text failed: %w", err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf text failed: %w", err)
	}
	return string(out), nil
}

func docxText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx failed: %w", err)
	}
	defer doc.Close()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// GetContent returns raw WordprocessingML; keep only the text runs.
func stripDocxTags(content string) string {
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func zipEntries(zipName string, data []byte) ([]Result, []error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, []error{fmt.Errorf("%s: open zip failed: %w", zipName, err)}
	}

	var results []Result
	var errs []error
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name))
		if ext != ".pdf" && ext != ".docx" {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: open zip entry failed: %w", zipName, entry.Name, err))
			continue
		}
		entryData, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: read zip entry failed: %w", zipName, entry.Name, err))
			continue
		}

		nested, nestedErrs := Extract(entry.Name, entryData)
		for i := range nested {
			nested[i].Filename = zipName + "/" + path.Base(entry.Name)
			results = append(results, nested[i])
		}
		for _, nestedErr := range nestedErrs {
			errs = append(errs, fmt.Errorf("%s: %w", zipName, nestedErr))
		}
	}
	return results, errs
}
