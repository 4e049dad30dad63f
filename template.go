package docfmt

import (
	"fmt"
	"strings"
)

// templateStage produces or patches a reference template: the document
// package skeleton carrying the style definitions a render starts from.
type templateStage interface {
	Generate(spec *StyleSpec) ([]byte, error)
	Patch(spec *StyleSpec, existing []byte) ([]byte, error)
}

// packageTemplater builds reference templates as document packages.
type packageTemplater struct{}

// Generate builds a fresh template package from the spec: content types,
// relationships, and a styles part derived from the spec's style table.
func (packageTemplater) Generate(spec *StyleSpec) ([]byte, error) {
	pkg := newDocPackage()
	pkg.set(partContentTypes, []byte(contentTypesXML))
	pkg.set(partRootRels, []byte(rootRelsXML))
	pkg.set(partDocumentRels, []byte(documentRelsXML))
	pkg.set(partStyles, buildStylesXML(spec))

	data, err := pkg.write()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return data, nil
}

// Patch rewrites the styles part of an existing template to match the
// spec, preserving every other part byte for byte.
func (packageTemplater) Patch(spec *StyleSpec, existing []byte) ([]byte, error) {
	pkg, err := openPackage(existing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	pkg.set(partStyles, buildStylesXML(spec))

	data, err := pkg.write()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return data, nil
}

// buildStylesXML renders the spec's style table as a WordprocessingML
// styles part.
func buildStylesXML(spec *StyleSpec) []byte {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	fmt.Fprintf(&sb, `<w:styles xmlns:w=%q>`+"\n", wpNamespace)

	for _, id := range spec.StyleIDs() {
		def, _ := spec.Style(id)
		writeStyle(&sb, def)
	}

	sb.WriteString("</w:styles>\n")
	return []byte(sb.String())
}

func writeStyle(sb *strings.Builder, def StyleDef) {
	fmt.Fprintf(sb, `<w:style w:type="paragraph" w:styleId=%q>`, def.ID)
	fmt.Fprintf(sb, `<w:name w:val=%q/>`, xmlEscape(def.Name))

	sb.WriteString("<w:pPr>")
	fmt.Fprintf(sb, `<w:jc w:val=%q/>`, alignmentValue(def.Alignment))
	if def.LineSpacing > 0 {
		fmt.Fprintf(sb, `<w:spacing w:line="%d" w:lineRule="auto"/>`, def.LineSpacing)
	}
	if def.FirstLineIndent > 0 {
		fmt.Fprintf(sb, `<w:ind w:firstLine="%d"/>`, def.FirstLineIndent)
	}
	sb.WriteString("</w:pPr>")

	sb.WriteString("<w:rPr>")
	fmt.Fprintf(sb, `<w:rFonts w:ascii=%q w:eastAsia=%q/>`, xmlEscape(def.FontEN), xmlEscape(def.FontCN))
	fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, def.SizeHalfPoints)
	if def.Bold {
		sb.WriteString("<w:b/>")
	}
	sb.WriteString("</w:rPr>")

	sb.WriteString("</w:style>\n")
}

// alignmentValue maps spec alignment names to WordprocessingML w:jc
// values; justify is "both" in OOXML.
func alignmentValue(alignment string) string {
	switch alignment {
	case "center":
		return "center"
	case "right":
		return "right"
	case "left":
		return "left"
	default:
		return "both"
	}
}

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>
`

const rootRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>
`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>
`
