package catalog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suwonmate/catalogdb/pkg/catalog"
	pkgerrors "github.com/suwonmate/catalogdb/pkg/errors"
)

func fixtureDocument(t *testing.T, quick bool) *catalog.Document {
	t.Helper()
	m := mergeFixtures(t, context.Background())
	return catalog.Assemble(m, catalog.NewVersion("1.2", "2024.1"), quick)
}

func decodeTop(t *testing.T, data []byte) map[string]json.RawMessage {
	t.Helper()
	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	return top
}

func TestDocumentKeys(t *testing.T) {
	tests := []struct {
		name  string
		quick bool
		want  []string
	}{
		{name: "normal", quick: false, want: []string{"departments", "estbLectDtaiList", "contacts", "version"}},
		{name: "quick", quick: true, want: []string{"departments_quick", "estbLectDtaiList_quick", "contacts", "version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fixtureDocument(t, tt.quick).Encode(false)
			require.NoError(t, err)

			top := decodeTop(t, data)
			assert.Len(t, top, 4)
			for _, key := range tt.want {
				assert.Contains(t, top, key)
			}
		})
	}
}

func TestDocumentVersion(t *testing.T) {
	data, err := fixtureDocument(t, false).Encode(false)
	require.NoError(t, err)

	var version map[string]string
	require.NoError(t, json.Unmarshal(decodeTop(t, data)["version"], &version))
	assert.Equal(t, map[string]string{
		"app_ver":        "1.2",
		"db_ver":         "2024.1",
		"legacy_app_ver": "0.0",
	}, version)
}

func TestDocumentEncoding(t *testing.T) {
	doc := fixtureDocument(t, false)

	t.Run("compact", func(t *testing.T) {
		data, err := doc.Encode(false)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "\n")
		assert.Contains(t, string(data), `"timtSmryCn":"Mon 1-2 <B101>"`)
		assert.NotContains(t, string(data), `\u003c`)
	})

	t.Run("pretty", func(t *testing.T) {
		data, err := doc.Encode(true)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"contacts\": {")
		assert.False(t, data[len(data)-1] == '\n')
	})

	t.Run("absent whitelist fields are null", func(t *testing.T) {
		data, err := doc.Encode(false)
		require.NoError(t, err)

		var subjects map[string][]map[string]any
		require.NoError(t, json.Unmarshal(decodeTop(t, data)["estbLectDtaiList"], &subjects))
		course := subjects["Business"][0]
		assert.Len(t, course, 18)
		assert.Nil(t, course["lssnLangNm"])
		assert.Contains(t, course, "lssnLangNm")
		assert.Equal(t, float64(3), course["point"])
		assert.Equal(t, "Business", course["estbDpmjNm"])
		assert.Nil(t, course["estbMjorNm"])
	})

	t.Run("majors sorted", func(t *testing.T) {
		data, err := doc.Encode(false)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"departments":{"Computing":["Computer Science","Data Science"]}`)
	})

	t.Run("empty document", func(t *testing.T) {
		empty := &catalog.Document{Version: catalog.NewVersion("1.0", "1")}
		data, err := empty.Encode(false)
		require.NoError(t, err)
		assert.Equal(t,
			`{"contacts":{},"departments":{},"estbLectDtaiList":{},"version":{"app_ver":"1.0","db_ver":"1","legacy_app_ver":"0.0"}}`,
			string(data))
	})
}

func TestParseDocument(t *testing.T) {
	for _, quick := range []bool{false, true} {
		doc := fixtureDocument(t, quick)
		data, err := doc.Encode(false)
		require.NoError(t, err)

		parsed, err := catalog.ParseDocument("result.json", data)
		require.NoError(t, err)
		assert.Equal(t, quick, parsed.Quick)
		assert.Equal(t, doc.Version, parsed.Version)
		assert.Len(t, parsed.Subjects["Computing"], 3)
		assert.True(t, parsed.Departments["Computing"].Has("Data Science"))

		again, err := parsed.Encode(false)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(again))
	}
}

func TestParseDocumentErrors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, err := catalog.ParseDocument("result.json", []byte(`{`))
		var parseErr *pkgerrors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := catalog.ParseDocument("result.json", []byte(`{"departments":{},"contacts":{},"version":{}}`))
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.Contains(t, err.Error(), "estbLectDtaiList")
	})
}
