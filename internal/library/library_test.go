package library_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardschema/internal/library"
	"github.com/arcanaland/cardschema/internal/validator"
)

func TestLoadLibrary_Directory(t *testing.T) {
	lib, err := library.LoadLibrary("testdata", validator.NewValidator(validator.Options{}))
	require.NoError(t, err)

	var sources []string
	for _, doc := range lib.Documents {
		sources = append(sources, doc.Source)
	}
	assert.Equal(t, []string{
		filepath.Join("testdata", "broken.json"),
		filepath.Join("testdata", "bulk.json") + "[0]",
		filepath.Join("testdata", "bulk.json") + "[1]",
		filepath.Join("testdata", "fury_sliver.json"),
	}, sources)

	assert.Len(t, lib.Cards(), 2)

	invalid := lib.Invalid()
	require.Len(t, invalid, 2)
	assert.ErrorIs(t, invalid[0].Err, validator.ErrInvalidJSON)

	shapeErr := validator.ExtractShapeError(invalid[1].Err)
	require.NotNil(t, shapeErr)
	assert.True(t, shapeErr.Has("rarity"))
	assert.True(t, shapeErr.Has("cmc"))
	assert.True(t, shapeErr.Has("set_id"))
}

func TestLoadLibrary_Strict(t *testing.T) {
	v := validator.NewValidator(validator.Options{DisallowUnknownFields: true})

	lib, err := library.LoadLibrary(filepath.Join("testdata", "fury_sliver.json"), v)
	require.NoError(t, err)
	require.Len(t, lib.Documents, 1)

	shapeErr := validator.ExtractShapeError(lib.Documents[0].Err)
	require.NotNil(t, shapeErr)
	assert.Equal(t, []string{"foil", "nonfoil"}, shapeErr.Paths())
}

func TestLibrary_GetCard(t *testing.T) {
	lib, err := library.LoadLibrary("testdata", validator.NewValidator(validator.Options{}))
	require.NoError(t, err)

	tests := []struct {
		query string
		want  string
	}{
		{query: "0000579f-7b35-4ed3-b44c-db2a538066fe", want: "Fury Sliver"},
		{query: "0000579F-7B35-4ED3-B44C-DB2A538066FE", want: "Fury Sliver"},
		{query: "urn:uuid:0000579f-7b35-4ed3-b44c-db2a538066fe", want: "Fury Sliver"},
		{query: "fury sliver", want: "Fury Sliver"},
		{query: "Insectile Aberration", want: "Delver of Secrets // Insectile Aberration"},
		{query: "DELVER OF SECRETS", want: "Delver of Secrets // Insectile Aberration"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, err := lib.GetCard(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name)
		})
	}

	_, err = lib.GetCard("Broken Printing")
	assert.ErrorIs(t, err, library.ErrCardNotFound)
}

func TestLoadLibrary_MissingPath(t *testing.T) {
	_, err := library.LoadLibrary(filepath.Join(t.TempDir(), "nope"), validator.NewValidator(validator.Options{}))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	v := validator.NewValidator(validator.Options{})

	docs := library.Parse("stdin", []byte(`"just a string"`), v)
	require.Len(t, docs, 1)
	assert.Equal(t, "stdin", docs[0].Source)
	assert.False(t, docs[0].Valid())
	assert.ErrorIs(t, docs[0].Err, validator.ErrInvalidShape)

	docs = library.Parse("stdin", []byte(`[]`), v)
	assert.Empty(t, docs)
}
