package docfmt

import (
	"embed"
	"fmt"
	"sort"

	"github.com/alnah/go-docfmt/internal/yamlutil"
)

// Builtin style specifications, embedded at build time.
//
//go:embed specs
var specFS embed.FS

// GenericSpecName is the builtin used when no spec is requested.
const GenericSpecName = "generic"

// builtinSpecFiles maps spec names to their embedded definition.
var builtinSpecFiles = map[string]string{
	GenericSpecName: "specs/generic.yaml",
	"academic-cn":   "specs/academic-cn.yaml",
}

// Style property defaults applied to fields omitted in a spec definition.
const (
	defaultFontCN         = "宋体"
	defaultFontEN         = "Times New Roman"
	defaultSizeHalfPoints = 24 // 12pt
	defaultAlignment      = "justify"
)

// StyleSpec is the declarative description of formatting rules a rendered
// document must satisfy.
type StyleSpec struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Page        PageSetup  `yaml:"page"`
	Styles      []StyleDef `yaml:"styles"`
}

// PageSetup holds page geometry in twips (1/20 pt).
type PageSetup struct {
	WidthTwips  int `yaml:"widthTwips"`
	HeightTwips int `yaml:"heightTwips"`
	MarginTwips int `yaml:"marginTwips"`
}

// StyleDef defines one named paragraph style. ID matches a paragraph type
// tag; the renderer styles each block with the style of its tag.
type StyleDef struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	FontCN          string `yaml:"fontCN"`
	FontEN          string `yaml:"fontEN"`
	SizeHalfPoints  int    `yaml:"sizeHalfPoints"`
	Bold            bool   `yaml:"bold"`
	Alignment       string `yaml:"alignment"` // "left", "center", "right", "justify"
	LineSpacing     int    `yaml:"lineSpacing"`     // 240ths of a line, 0 = single
	FirstLineIndent int    `yaml:"firstLineIndent"` // twips
	Required        bool   `yaml:"required"`        // validator demands this style exist
}

// A4 geometry in twips, used when a spec omits page setup.
const (
	a4WidthTwips  = 11906
	a4HeightTwips = 16838
	defaultMargin = 1440 // 1 inch
)

// Style returns the definition for a style ID.
func (s *StyleSpec) Style(id string) (StyleDef, bool) {
	for _, def := range s.Styles {
		if def.ID == id {
			return def.withDefaults(), true
		}
	}
	return StyleDef{}, false
}

// RequiredStyleIDs returns the IDs the validator demands, sorted.
func (s *StyleSpec) RequiredStyleIDs() []string {
	var ids []string
	for _, def := range s.Styles {
		if def.Required {
			ids = append(ids, def.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// StyleIDs returns every defined style ID, sorted.
func (s *StyleSpec) StyleIDs() []string {
	ids := make([]string, 0, len(s.Styles))
	for _, def := range s.Styles {
		ids = append(ids, def.ID)
	}
	sort.Strings(ids)
	return ids
}

// normalized returns a copy with page geometry and style defaults applied.
func (s *StyleSpec) normalized() *StyleSpec {
	out := *s
	if out.Page.WidthTwips == 0 {
		out.Page.WidthTwips = a4WidthTwips
	}
	if out.Page.HeightTwips == 0 {
		out.Page.HeightTwips = a4HeightTwips
	}
	if out.Page.MarginTwips == 0 {
		out.Page.MarginTwips = defaultMargin
	}
	out.Styles = make([]StyleDef, len(s.Styles))
	for i, def := range s.Styles {
		out.Styles[i] = def.withDefaults()
	}
	return &out
}

func (d StyleDef) withDefaults() StyleDef {
	if d.FontCN == "" {
		d.FontCN = defaultFontCN
	}
	if d.FontEN == "" {
		d.FontEN = defaultFontEN
	}
	if d.SizeHalfPoints == 0 {
		d.SizeHalfPoints = defaultSizeHalfPoints
	}
	if d.Alignment == "" {
		d.Alignment = defaultAlignment
	}
	if d.Name == "" {
		d.Name = d.ID
	}
	return d
}

// specCatalog resolves style specifications by name. Implemented by
// builtinCatalog; injectable by tests.
type specCatalog interface {
	Builtin(name string) (*StyleSpec, bool)
	Generic() (*StyleSpec, error)
}

// builtinCatalog serves the embedded specifications.
type builtinCatalog struct{}

// Builtin loads a named builtin spec. The second return is false for
// unknown names.
func (builtinCatalog) Builtin(name string) (*StyleSpec, bool) {
	path, ok := builtinSpecFiles[name]
	if !ok {
		return nil, false
	}
	spec, err := loadSpecFile(path)
	if err != nil {
		// Embedded specs are covered by tests; a parse failure here is a
		// packaging bug, not a user error.
		panic(fmt.Sprintf("docfmt: embedded spec %s: %v", path, err))
	}
	return spec, true
}

// Generic builds the default generic specification.
func (c builtinCatalog) Generic() (*StyleSpec, error) {
	spec, ok := c.Builtin(GenericSpecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpec, GenericSpecName)
	}
	return spec, nil
}

// BuiltinSpecNames lists the available builtin specification names, sorted.
func BuiltinSpecNames() []string {
	names := make([]string, 0, len(builtinSpecFiles))
	for name := range builtinSpecFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSpec parses a style specification from YAML bytes.
func LoadSpec(data []byte) (*StyleSpec, error) {
	var spec StyleSpec
	if err := yamlutil.UnmarshalStrict("style spec", data, &spec); err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: spec has no name", ErrInvalidOptions)
	}
	return spec.normalized(), nil
}

func loadSpecFile(path string) (*StyleSpec, error) {
	data, err := specFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadSpec(data)
}
