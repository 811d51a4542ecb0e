// Package xmlschema reads a table's XML schema definition and converts it
// into the canonical schema.Table representation the rest of the
// toolchain operates on.
package xmlschema

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"dbcgen/internal/schema"
)

// xmlTable is the top-level XML document: <table name="...">.
type xmlTable struct {
	XMLName xml.Name   `xml:"table"`
	Name    string     `xml:"name,attr"`
	Fields  []xmlField `xml:"field"`
}

// xmlField is a single <field> element. Only the attributes relevant to
// its type are populated; Elem/Length are used by type="array", Target by
// type="primary_key"/"foreign_key", Enum by type="enum".
type xmlField struct {
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Elem    string `xml:"elem,attr"`
	Length  int    `xml:"length,attr"`
	Target  string `xml:"target,attr"`
	Storage string `xml:"storage,attr"`
	Enum    string `xml:"enum,attr"`
	Comment string `xml:"comment,attr"`
}

// Parser reads DBC table XML schema files.
type Parser struct {
	version schema.Version
}

// NewParser creates a parser that attributes every table it parses to the
// given version.
func NewParser(version schema.Version) *Parser {
	return &Parser{version: version}
}

// ParseFile opens the file at path and parses it as an XML table schema.
func (p *Parser) ParseFile(path string) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "xmlschema: open file %q", path)
	}
	defer f.Close()

	t, err := p.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "xmlschema: file %q", path)
	}
	return t, nil
}

// Parse reads XML content from r and returns the corresponding
// schema.Table.
func (p *Parser) Parse(r io.Reader) (*schema.Table, error) {
	var xt xmlTable
	if err := xml.NewDecoder(r).Decode(&xt); err != nil {
		return nil, fmt.Errorf("xmlschema: decode error: %w", err)
	}
	return newConverter(p.version, &xt).convert()
}

type converter struct {
	version schema.Version
	xt      *xmlTable
}

func newConverter(version schema.Version, xt *xmlTable) *converter {
	return &converter{version: version, xt: xt}
}

func (c *converter) convert() (*schema.Table, error) {
	if c.xt.Name == "" {
		return nil, errors.New("xmlschema: table is missing a name")
	}

	t := &schema.Table{
		Name:    c.xt.Name,
		Version: c.version,
		Fields:  make([]schema.Field, 0, len(c.xt.Fields)),
	}

	for i := range c.xt.Fields {
		f, err := c.convertField(&c.xt.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("xmlschema: table %q: %w", c.xt.Name, err)
		}
		t.Fields = append(t.Fields, f)
	}

	return t, nil
}

func (c *converter) convertField(xf *xmlField) (schema.Field, error) {
	if xf.Name == "" {
		return schema.Field{}, errors.New("field is missing a name")
	}

	ft, err := c.convertType(xf)
	if err != nil {
		return schema.Field{}, fmt.Errorf("field %q: %w", xf.Name, err)
	}

	return schema.Field{Name: xf.Name, Type: ft, Comment: xf.Comment}, nil
}

func (c *converter) convertType(xf *xmlField) (schema.FieldType, error) {
	switch schema.Kind(xf.Type) {
	case schema.KindI32, schema.KindU32, schema.KindI16, schema.KindU16,
		schema.KindI8, schema.KindU8, schema.KindFloat, schema.KindBool32,
		schema.KindStringRef, schema.KindStringRefLoc:
		return schema.Scalar(schema.Kind(xf.Type)), nil

	case schema.KindPrimaryKey:
		if xf.Target == "" {
			return schema.FieldType{}, errors.New("primary_key field requires a target attribute")
		}
		return schema.PrimaryKey(xf.Target, schema.Kind(xf.Storage)), nil

	case schema.KindForeignKey:
		if xf.Target == "" {
			return schema.FieldType{}, errors.New("foreign_key field requires a target attribute")
		}
		return schema.ForeignKey(xf.Target, schema.Kind(xf.Storage)), nil

	case schema.KindEnum:
		if xf.Enum == "" {
			return schema.FieldType{}, errors.New("enum field requires an enum attribute")
		}
		return schema.Enum(xf.Enum), nil

	case schema.KindArray:
		if xf.Length <= 0 {
			return schema.FieldType{}, errors.New("array field requires a positive length attribute")
		}
		elem, err := c.convertType(&xmlField{Type: xf.Elem, Target: xf.Target, Storage: xf.Storage, Enum: xf.Enum})
		if err != nil {
			return schema.FieldType{}, fmt.Errorf("array element: %w", err)
		}
		if elem.Kind == schema.KindArray {
			return schema.FieldType{}, errors.New("arrays of arrays are not supported")
		}
		return schema.Array(elem, xf.Length), nil

	default:
		return schema.FieldType{}, fmt.Errorf("unrecognized field type %q", xf.Type)
	}
}
