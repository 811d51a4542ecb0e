package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbcgen/internal/schema"
)

func itemClassTable() *schema.Table {
	return &schema.Table{
		Name:    "item_class",
		Version: schema.VersionVanilla,
		Fields: []schema.Field{
			{Name: "id", Type: schema.PrimaryKey("item_class")},
			{Name: "name", Type: schema.Scalar(schema.KindStringRefLoc)},
		},
	}
}

func itemTable() *schema.Table {
	return &schema.Table{
		Name:    "item",
		Version: schema.VersionVanilla,
		Fields: []schema.Field{
			{Name: "id", Type: schema.PrimaryKey("item")},
			{Name: "class", Type: schema.ForeignKey("item_class")},
			{Name: "display_infos", Type: schema.Array(schema.Scalar(schema.KindU32), 4)},
		},
	}
}

func buildCatalog(t *testing.T, tables ...*schema.Table) *schema.Objects {
	t.Helper()
	o := schema.NewObjects(schema.VersionVanilla)
	for _, tbl := range tables {
		require.NoError(t, o.PushDescription(tbl))
	}
	return o
}

func TestGenerateTable_SimpleTable(t *testing.T) {
	o := buildCatalog(t, itemClassTable())

	fileName, src, err := GenerateTable(itemClassTable(), o)
	require.NoError(t, err)

	assert.Equal(t, "item_class.go", fileName)
	assert.Contains(t, src, "package vanilla")
	assert.Contains(t, src, "type ItemClassKey uint32")
	assert.Contains(t, src, "type ItemClassRow struct")
	assert.Contains(t, src, "Name dbc.LocalizedString")
	assert.Contains(t, src, "type ItemClass struct")
	assert.Contains(t, src, "Rows []ItemClassRow")
	assert.Contains(t, src, "func (t *ItemClass) Get(key ItemClassKey) (ItemClassRow, bool)")
	assert.Contains(t, src, "func (t *ItemClass) GetMut(key ItemClassKey) (*ItemClassRow, bool)")
	assert.Contains(t, src, "dbc.FindByKey(t.Rows, key)")
	assert.Contains(t, src, "func ReadItemClass(b []byte) (*ItemClass, error)")
	assert.Contains(t, src, "func (t *ItemClass) Write(w io.Writer) error")
	assert.Contains(t, src, "header.TableRegions(len(b))")
	assert.Contains(t, src, "ItemClassRowSize = 40") // 4 (id) + 9*4 (loc)
}

func TestGenerateTable_NoPrimaryKeyOmitsLookups(t *testing.T) {
	lookup := &schema.Table{
		Name:    "lookup",
		Version: schema.VersionVanilla,
		Fields:  []schema.Field{{Name: "value", Type: schema.Scalar(schema.KindU32)}},
	}
	o := buildCatalog(t, lookup)

	_, src, err := GenerateTable(lookup, o)
	require.NoError(t, err)

	assert.Contains(t, src, "type Lookup struct")
	assert.Contains(t, src, "Rows []LookupRow")
	assert.NotContains(t, src, "func (t *Lookup) Get(")
	assert.NotContains(t, src, "func (t *Lookup) GetMut(")
}

func TestGenerateTable_ForeignKeyResolvesTargetKeyType(t *testing.T) {
	o := buildCatalog(t, itemClassTable(), itemTable())

	_, src, err := GenerateTable(itemTable(), o)
	require.NoError(t, err)

	assert.Contains(t, src, "Class ItemClassKey")
	assert.Contains(t, src, "DisplayInfos [4]uint32")
}

func TestGenerateTable_ForeignKeyWithoutTargetPK(t *testing.T) {
	lookup := &schema.Table{
		Name:    "lookup",
		Version: schema.VersionVanilla,
		Fields:  []schema.Field{{Name: "value", Type: schema.Scalar(schema.KindU32)}},
	}
	referencer := &schema.Table{
		Name:    "referencer",
		Version: schema.VersionVanilla,
		Fields: []schema.Field{
			{Name: "id", Type: schema.PrimaryKey("referencer")},
			{Name: "target", Type: schema.ForeignKey("lookup")},
		},
	}
	o := buildCatalog(t, lookup, referencer)

	_, src, err := GenerateTable(referencer, o)
	require.NoError(t, err)
	assert.Contains(t, src, "Target uint32")
}

func TestGenerateAggregator(t *testing.T) {
	o := buildCatalog(t, itemClassTable(), itemTable())
	_, src := GenerateAggregator(schema.VersionVanilla, o.Descriptions())

	assert.Contains(t, src, "TableNameItem TableName = \"item\"")
	assert.Contains(t, src, "TableNameItemClass TableName = \"item_class\"")
	assert.Contains(t, src, "func TableNameFromStr(s string) (TableName, error)")
	assert.Contains(t, src, "case TableNameItem:")
	assert.Contains(t, src, "func LoadTable(name TableName, b []byte) (*Table, error)")
	assert.Contains(t, src, "func (t *Table) WriteTable(w io.Writer) error")
}

func TestRowSize(t *testing.T) {
	assert.Equal(t, 40, RowSize(itemClassTable())) // 4 + (8+1)*4
	assert.Equal(t, 4+4+4*4, RowSize(itemTable()))
}
