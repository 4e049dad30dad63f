package docfmt

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Validation issue codes.
const (
	IssueMissingStyle      = "missing_style"      // required style absent from styles part
	IssueUndefinedStyleRef = "undefined_style_ref" // paragraph references an unknown style
	IssueEmptyBody         = "empty_body"         // document body has no paragraphs
	IssueMissingHeading1   = "missing_heading_1"  // no level-1 heading in the document
)

// ValidationReport summarizes a validation pass. OK is true when no
// error-severity issue was found; warnings do not affect OK.
type ValidationReport struct {
	OK       bool
	Errors   int
	Warnings int
	Issues   []ValidationIssue
}

// ValidationIssue is one finding of the validator.
type ValidationIssue struct {
	Code     string
	Severity string // "error" or "warning"
	Message  string
	Target   string // style ID or part name the issue points at
}

// validateStage checks rendered package bytes against a spec.
type validateStage interface {
	Validate(pkg []byte, spec *StyleSpec) (*ValidationReport, error)
}

// fixStage applies report-driven fixes to package bytes.
type fixStage interface {
	Fix(pkg []byte, report *ValidationReport, spec *StyleSpec) ([]byte, error)
}

// Precompiled XPath queries. local-name() matching keeps the queries
// independent of the namespace prefix a producer chose.
var (
	styleQuery     = xpath.MustCompile("//*[local-name()='style']")
	styleRefQuery  = xpath.MustCompile("//*[local-name()='pStyle']")
	paragraphQuery = xpath.MustCompile("//*[local-name()='body']//*[local-name()='p']")
)

// packageValidator validates document packages with XML queries.
type packageValidator struct{}

// Validate parses the package's document and styles parts and reports
// structural problems: missing required styles, references to undefined
// styles, an empty body, and a missing level-1 heading.
func (packageValidator) Validate(data []byte, spec *StyleSpec) (*ValidationReport, error) {
	pkg, err := openPackage(data)
	if err != nil {
		return nil, err
	}

	docNode, err := parsePart(pkg, partDocument)
	if err != nil {
		return nil, err
	}
	stylesNode, err := parsePart(pkg, partStyles)
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{}

	defined := definedStyleIDs(stylesNode)
	for _, id := range spec.RequiredStyleIDs() {
		if !defined[id] {
			report.add(ValidationIssue{
				Code:     IssueMissingStyle,
				Severity: "error",
				Message:  fmt.Sprintf("required style %q is not defined", id),
				Target:   id,
			})
		}
	}

	refs := styleRefCounts(docNode)
	for id, count := range refs {
		if defined[id] {
			continue
		}
		report.add(ValidationIssue{
			Code:     IssueUndefinedStyleRef,
			Severity: "error",
			Message:  fmt.Sprintf("%d paragraph(s) reference undefined style %q", count, id),
			Target:   id,
		})
	}

	if len(xmlquery.QuerySelectorAll(docNode, paragraphQuery)) == 0 {
		report.add(ValidationIssue{
			Code:     IssueEmptyBody,
			Severity: "error",
			Message:  "document body has no paragraphs",
			Target:   partDocument,
		})
	}

	if refs["heading_1"] == 0 {
		report.add(ValidationIssue{
			Code:     IssueMissingHeading1,
			Severity: "warning",
			Message:  "document has no level-1 heading",
			Target:   partDocument,
		})
	}

	report.OK = report.Errors == 0
	return report, nil
}

func (r *ValidationReport) add(issue ValidationIssue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == "error" {
		r.Errors++
	} else {
		r.Warnings++
	}
}

func parsePart(pkg *docPackage, name string) (*xmlquery.Node, error) {
	data, ok := pkg.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: missing part %s", ErrPackageParse, name)
	}
	node, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrPackageParse, name, err)
	}
	return node, nil
}

// definedStyleIDs collects the style IDs declared in a styles part.
func definedStyleIDs(styles *xmlquery.Node) map[string]bool {
	defined := make(map[string]bool)
	for _, node := range xmlquery.QuerySelectorAll(styles, styleQuery) {
		if id := selectLocalAttr(node, "styleId"); id != "" {
			defined[id] = true
		}
	}
	return defined
}

// styleRefCounts counts pStyle references per style ID in a document part.
func styleRefCounts(doc *xmlquery.Node) map[string]int {
	refs := make(map[string]int)
	for _, node := range xmlquery.QuerySelectorAll(doc, styleRefQuery) {
		if val := selectLocalAttr(node, "val"); val != "" {
			refs[val]++
		}
	}
	return refs
}

// selectLocalAttr reads an attribute by local name, ignoring its prefix.
func selectLocalAttr(node *xmlquery.Node, local string) string {
	for _, attr := range node.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
