package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsValidate_ForeignKeyMustExist(t *testing.T) {
	o := NewObjects(VersionVanilla)

	require.NoError(t, o.PushDescription(&Table{
		Name:    "item",
		Version: VersionVanilla,
		Fields: []Field{
			{Name: "id", Type: PrimaryKey("item")},
			{Name: "class", Type: ForeignKey("item_class")},
		},
	}))

	err := o.Validate(DefaultEnumCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_class")
}

func TestObjectsValidate_ForeignKeyResolved(t *testing.T) {
	o := NewObjects(VersionVanilla)

	require.NoError(t, o.PushDescription(&Table{
		Name:    "item_class",
		Version: VersionVanilla,
		Fields:  []Field{{Name: "id", Type: PrimaryKey("item_class")}},
	}))
	require.NoError(t, o.PushDescription(&Table{
		Name:    "item",
		Version: VersionVanilla,
		Fields: []Field{
			{Name: "id", Type: PrimaryKey("item")},
			{Name: "class", Type: ForeignKey("item_class")},
		},
	}))

	assert.NoError(t, o.Validate(DefaultEnumCatalog()))
}

func TestObjectsValidate_PrimaryKeyMustTargetOwnTable(t *testing.T) {
	o := NewObjects(VersionVanilla)
	require.NoError(t, o.PushDescription(&Table{
		Name:    "item",
		Version: VersionVanilla,
		Fields:  []Field{{Name: "id", Type: PrimaryKey("other")}},
	}))

	err := o.Validate(DefaultEnumCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary_key targets table")
}

func TestObjectsValidate_EnumNameMustBeKnown(t *testing.T) {
	o := NewObjects(VersionVanilla)
	require.NoError(t, o.PushDescription(&Table{
		Name:    "server",
		Version: VersionVanilla,
		Fields: []Field{
			{Name: "id", Type: PrimaryKey("server")},
			{Name: "region", Type: Enum("NotARealEnum")},
		},
	}))

	err := o.Validate(DefaultEnumCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotARealEnum")
}

func TestObjectsValidate_EnumNameInArrayElement(t *testing.T) {
	o := NewObjects(VersionVanilla)
	require.NoError(t, o.PushDescription(&Table{
		Name:    "server",
		Version: VersionVanilla,
		Fields: []Field{
			{Name: "id", Type: PrimaryKey("server")},
			{Name: "regions", Type: Array(Enum("ServerRegion"), 4)},
		},
	}))

	assert.NoError(t, o.Validate(DefaultEnumCatalog()))
}

func TestObjectsDescriptions_SortedByName(t *testing.T) {
	o := NewObjects(VersionVanilla)
	require.NoError(t, o.PushDescription(&Table{Name: "zebra", Version: VersionVanilla}))
	require.NoError(t, o.PushDescription(&Table{Name: "alpha", Version: VersionVanilla}))
	require.NoError(t, o.PushDescription(&Table{Name: "mid", Version: VersionVanilla}))

	names := make([]string, 0, 3)
	for _, d := range o.Descriptions() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zebra"}, names)
}

func TestObjectsPushDescription_RejectsDuplicateAndWrongVersion(t *testing.T) {
	o := NewObjects(VersionVanilla)
	require.NoError(t, o.PushDescription(&Table{Name: "item", Version: VersionVanilla}))

	err := o.PushDescription(&Table{Name: "item", Version: VersionVanilla})
	assert.Error(t, err)

	err = o.PushDescription(&Table{Name: "other", Version: VersionTBC})
	assert.Error(t, err)
}
