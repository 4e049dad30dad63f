package docfmt

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Well-known part names inside a document package.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partDocument     = "word/document.xml"
	partCoreProps    = "docProps/core.xml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// wpNamespace is the WordprocessingML main namespace.
const wpNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// docPackage is an in-memory document package: a zip container of XML
// parts. Entry order is preserved across open/write round trips so
// patching leaves untouched parts byte-stable.
type docPackage struct {
	order   []string
	entries map[string][]byte
}

func newDocPackage() *docPackage {
	return &docPackage{entries: make(map[string][]byte)}
}

// openPackage reads a zip container into memory.
func openPackage(data []byte) (*docPackage, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackageParse, err)
	}

	pkg := newDocPackage()
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrPackageParse, file.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrPackageParse, file.Name, err)
		}
		pkg.set(file.Name, content)
	}
	return pkg, nil
}

// set stores a part, keeping first-seen order for existing names.
func (p *docPackage) set(name string, data []byte) {
	if _, exists := p.entries[name]; !exists {
		p.order = append(p.order, name)
	}
	p.entries[name] = data
}

func (p *docPackage) get(name string) ([]byte, bool) {
	data, ok := p.entries[name]
	return data, ok
}

// write serializes the package back to zip bytes.
func (p *docPackage) write() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range p.order {
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating package entry %s: %w", name, err)
		}
		if _, err := f.Write(p.entries[name]); err != nil {
			return nil, fmt.Errorf("writing package entry %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// xmlEscape escapes text for use in XML content and attribute values.
func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
