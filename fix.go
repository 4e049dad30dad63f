package docfmt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/alnah/go-docfmt/internal/classify"
)

// packageFixer applies report-driven repairs to a document package.
// Unknown issue codes are left untouched: the fix loop's re-validation
// decides whether the document converged.
type packageFixer struct{}

// Fix repairs the package per the report:
//   - missing_style: the styles part is regenerated from the spec, which
//     restores every required definition at once.
//   - undefined_style_ref: offending paragraph references are remapped to
//     the body style.
func (packageFixer) Fix(data []byte, report *ValidationReport, spec *StyleSpec) ([]byte, error) {
	if report == nil || len(report.Issues) == 0 {
		return data, nil
	}

	pkg, err := openPackage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixFailed, err)
	}

	var regenerateStyles bool
	undefined := make(map[string]bool)
	for _, issue := range report.Issues {
		switch issue.Code {
		case IssueMissingStyle:
			regenerateStyles = true
		case IssueUndefinedStyleRef:
			undefined[issue.Target] = true
		}
	}

	if regenerateStyles {
		pkg.set(partStyles, buildStylesXML(spec))
	}

	if len(undefined) > 0 {
		fixed, err := remapStyleRefs(pkg, undefined)
		if err != nil {
			return nil, err
		}
		pkg.set(partDocument, fixed)
	}

	out, err := pkg.write()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixFailed, err)
	}
	return out, nil
}

// remapStyleRefs rewrites pStyle references named in undefined to the
// body style and reserializes the document part.
func remapStyleRefs(pkg *docPackage, undefined map[string]bool) ([]byte, error) {
	docData, ok := pkg.get(partDocument)
	if !ok {
		return nil, fmt.Errorf("%w: missing part %s", ErrFixFailed, partDocument)
	}
	root, err := xmlquery.Parse(bytes.NewReader(docData))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrFixFailed, partDocument, err)
	}

	for _, node := range xmlquery.QuerySelectorAll(root, styleRefQuery) {
		for i, attr := range node.Attr {
			if attr.Name.Local == "val" && undefined[attr.Value] {
				node.Attr[i].Value = classify.TagBody
			}
		}
	}

	// Parse keeps the XML declaration as a child node; only add one when
	// the source part lacked it.
	out := root.OutputXML(false)
	if !strings.HasPrefix(out, "<?xml") {
		out = xmlHeader + out
	}
	return []byte(out), nil
}
