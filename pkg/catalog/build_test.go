package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suwonmate/catalogdb/pkg/catalog"
	pkgerrors "github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

func TestMakeDBContentBusiness(t *testing.T) {
	openClass := `{"estbLectDtaiList":[{"subjtCd":"11416","diclNo":"038","ltrPrfsNm":"Choi"}]}`
	classTodo := `{"estbLectDtaiList":[{"subjtCd":"11416","diclNo":"038","estbDpmjNm":"Business","estbMjorNm":null,"email":"test@school.edu","mpno":"010-0000-0000"}]}`

	content, err := catalog.MakeDBContent(openClass, classTodo, "1.0", "1", false)
	require.NoError(t, err)

	course := `{"trgtGrdeCd":null,"subjtNm":null,"ltrPrfsNm":"Choi","deptNm":null,"facDvnm":null,` +
		`"timtSmryCn":null,"lssnLangNm":null,"subjtCd":"11416","diclNo":"038","subjtEstbYear":null,` +
		`"point":null,"cltTerrNm":null,"sexCdNm":null,"hffcStatNm":null,"clsfNm":null,"capprTypeNm":null,` +
		`"estbDpmjNm":"Business","estbMjorNm":null}`
	want := `{"contacts":{"Business":{"Choi":{"email":"test@school.edu","mpno":"010-0000-0000"}}},` +
		`"departments":{},` +
		`"estbLectDtaiList":{"Business":[` + course + `]},` +
		`"version":{"app_ver":"1.0","db_ver":"1","legacy_app_ver":"0.0"}}`
	assert.Equal(t, want, content)
}

func TestMakeDBContentQuickMode(t *testing.T) {
	doc := `{"estbLectDtaiList":[{"subjtCd":"1","diclNo":"1","estbDpmjNm":"Law","estbMjorNm":"Civil","ltrPrfsNm":"Han"}]}`

	content, err := catalog.MakeDBContent(doc, doc, "1.0", "1", true)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(content), &top))
	assert.Contains(t, top, "departments_quick")
	assert.Contains(t, top, "estbLectDtaiList_quick")
	assert.NotContains(t, top, "departments")
	assert.NotContains(t, top, "estbLectDtaiList")
	assert.JSONEq(t, `{"Law":["Civil"]}`, string(top["departments_quick"]))
}

func TestQuickMode(t *testing.T) {
	a := loadFixture(t, "open_class.json")
	b := loadFixture(t, "class_todo.json")

	assert.True(t, catalog.QuickMode(a, a))
	assert.True(t, catalog.QuickMode(nil, []byte{}))
	assert.False(t, catalog.QuickMode(a, b))
	assert.False(t, catalog.QuickMode([]byte(`{"a":1}`), []byte(`{"a": 1}`)), "comparison is byte-exact")
}

func TestBuild(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	openClass := loadFixture(t, "open_class.json")
	classTodo := loadFixture(t, "class_todo.json")

	result, err := catalog.Build(ctx, openClass, classTodo, "1.2", "2024.1",
		catalog.WithSourceNames("open.json", "todo.json"))
	require.NoError(t, err)

	assert.False(t, result.Document.Quick)
	assert.Len(t, result.Warnings, 1)
	assert.Equal(t, 4, result.Stats.Merged)

	testLogger.AssertContains(t, "Merged course catalogs")
	testLogger.AssertContains(t, `"source":"open.json"`)

	t.Run("deterministic", func(t *testing.T) {
		first, err := result.Bytes()
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			again, err := catalog.Build(context.Background(), openClass, classTodo, "1.2", "2024.1")
			require.NoError(t, err)
			data, err := again.Bytes()
			require.NoError(t, err)
			assert.Equal(t, first, data)
		}
	})

	t.Run("quick derived from inputs", func(t *testing.T) {
		r, err := catalog.Build(context.Background(), classTodo, classTodo, "1.2", "2024.1")
		require.NoError(t, err)
		assert.True(t, r.Document.Quick)
	})

	t.Run("quick override", func(t *testing.T) {
		r, err := catalog.Build(context.Background(), classTodo, classTodo, "1.2", "2024.1",
			catalog.WithQuickMode(false))
		require.NoError(t, err)
		assert.False(t, r.Document.Quick)
	})

	t.Run("pretty", func(t *testing.T) {
		r, err := catalog.Build(context.Background(), openClass, classTodo, "1.2", "2024.1",
			catalog.WithPretty(true))
		require.NoError(t, err)
		data, err := r.Bytes()
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n")
	})
}

func TestBuildErrors(t *testing.T) {
	valid := []byte(`{"estbLectDtaiList":[]}`)

	tests := []struct {
		name      string
		openClass []byte
		classTodo []byte
		source    string
		check     func(t *testing.T, err error)
	}{
		{
			name:      "open class not json",
			openClass: []byte(`not json`),
			classTodo: valid,
			source:    "open.json",
			check: func(t *testing.T, err error) {
				var parseErr *pkgerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, "open.json", parseErr.File)
			},
		},
		{
			name:      "class todo missing array",
			openClass: valid,
			classTodo: []byte(`{"items":[]}`),
			source:    "todo.json",
			check: func(t *testing.T, err error) {
				var missing *pkgerrors.MissingArrayError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, "todo.json", missing.Source)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Build(context.Background(), tt.openClass, tt.classTodo, "1.0", "1",
				catalog.WithSourceNames("open.json", "todo.json"))
			require.Error(t, err)
			tt.check(t, err)
		})
	}

	t.Run("string form", func(t *testing.T) {
		_, err := catalog.MakeDBContent(`{}`, `{"estbLectDtaiList":[]}`, "1.0", "1", false)
		assert.True(t, pkgerrors.IsMissingArray(err))
	})
}
