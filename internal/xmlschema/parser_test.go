package xmlschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbcgen/internal/schema"
)

const itemSubClassMaskXML = `
<table name="item_sub_class_mask">
	<field name="subclass" type="u32"/>
	<field name="mask" type="i32"/>
	<field name="name" type="string_ref_loc"/>
</table>
`

func TestParse_ScalarFields(t *testing.T) {
	p := NewParser(schema.VersionVanilla)
	tbl, err := p.Parse(strings.NewReader(itemSubClassMaskXML))
	require.NoError(t, err)

	assert.Equal(t, "item_sub_class_mask", tbl.Name)
	assert.Equal(t, schema.VersionVanilla, tbl.Version)
	require.Len(t, tbl.Fields, 3)
	assert.Equal(t, schema.KindU32, tbl.Fields[0].Type.Kind)
	assert.Equal(t, schema.KindStringRefLoc, tbl.Fields[2].Type.Kind)
}

func TestParse_KeysAndEnumsAndArrays(t *testing.T) {
	const doc = `
<table name="item">
	<field name="id" type="primary_key" target="item"/>
	<field name="class" type="foreign_key" target="item_class"/>
	<field name="region" type="enum" enum="ServerRegion"/>
	<field name="flags" type="array" elem="u32" length="4"/>
</table>
`
	p := NewParser(schema.VersionWrath)
	tbl, err := p.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	pk, ok := tbl.PrimaryKeyField()
	require.True(t, ok)
	assert.Equal(t, "item", pk.Type.TargetTable)

	fks := tbl.ForeignKeyFields()
	require.Len(t, fks, 1)
	assert.Equal(t, "item_class", fks[0].Type.TargetTable)

	enums := tbl.EnumFields()
	require.Len(t, enums, 1)
	assert.Equal(t, "ServerRegion", enums[0].Type.EnumName)

	arr := tbl.Fields[3]
	require.Equal(t, schema.KindArray, arr.Type.Kind)
	assert.Equal(t, 4, arr.Type.ArrayLen)
	assert.Equal(t, schema.KindU32, arr.Type.ArrayElem.Kind)
}

func TestParse_RejectsMissingTableName(t *testing.T) {
	p := NewParser(schema.VersionVanilla)
	_, err := p.Parse(strings.NewReader(`<table><field name="a" type="u32"/></table>`))
	assert.Error(t, err)
}

func TestParse_RejectsUnknownFieldType(t *testing.T) {
	p := NewParser(schema.VersionVanilla)
	_, err := p.Parse(strings.NewReader(`<table name="t"><field name="a" type="bogus"/></table>`))
	assert.Error(t, err)
}

func TestParse_RejectsArrayWithoutLength(t *testing.T) {
	p := NewParser(schema.VersionVanilla)
	_, err := p.Parse(strings.NewReader(`<table name="t"><field name="a" type="array" elem="u32"/></table>`))
	assert.Error(t, err)
}
