package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// facetSQL 生成facet过滤后的查询SQL及绑定参数
func facetSQL(t *testing.T, query *dto.ProjectListQuery) (string, []interface{}) {
	t.Helper()
	var projects []*model.Project
	tx := applyProjectFacets(dryRunDB(t).Model(&model.Project{}).Where("is_published = ?", true), query).
		Find(&projects)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestApplyProjectFacetsIdentity(t *testing.T) {
	cases := []struct {
		name  string
		query *dto.ProjectListQuery
	}{
		{"全部为空", &dto.ProjectListQuery{}},
		{"全部为all", &dto.ProjectListQuery{Category: "all", SubCategory: "all", Type: "all", Style: "all"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			sql, vars := facetSQL(t, tt.query)

			assert.Contains(t, sql, "is_published = ?")
			assert.NotContains(t, sql, "category = ?")
			assert.NotContains(t, sql, "sub_category = ?")
			assert.NotContains(t, sql, "type = ?")
			assert.NotContains(t, sql, "style = ?")
			assert.NotContains(t, sql, "LIKE")
			assert.NotContains(t, sql, "year = ?")
			assert.Equal(t, []interface{}{true}, vars)
		})
	}
}

func TestApplyProjectFacetsConjunction(t *testing.T) {
	sql, vars := facetSQL(t, &dto.ProjectListQuery{
		Category:    model.CategoryArchitecture,
		SubCategory: model.SubCategoryResidential,
		Type:        "villa",
		Style:       "modern",
		Search:      "light",
		Year:        2023,
	})

	assert.Contains(t, sql, "is_published = ?")
	assert.Contains(t, sql, "category = ?")
	assert.Contains(t, sql, "sub_category = ?")
	assert.Contains(t, sql, "type = ?")
	assert.Contains(t, sql, "style = ?")
	assert.Contains(t, sql, "name LIKE ? OR short_description LIKE ? OR description LIKE ?")
	assert.Contains(t, sql, "year = ?")
	assert.Equal(t, []interface{}{
		true,
		model.CategoryArchitecture,
		model.SubCategoryResidential,
		"villa",
		"modern",
		"%light%", "%light%", "%light%",
		2023,
	}, vars)
}

func TestApplyProjectFacetsPartial(t *testing.T) {
	sql, vars := facetSQL(t, &dto.ProjectListQuery{Category: model.CategoryInterior, Style: "all"})

	assert.Contains(t, sql, "category = ?")
	assert.NotContains(t, sql, "style = ?")
	assert.NotContains(t, sql, "sub_category = ?")
	assert.Equal(t, []interface{}{true, model.CategoryInterior}, vars)
}

func TestApplyProjectSort(t *testing.T) {
	cases := []struct {
		name string
		sort string
		want string
	}{
		{"最新优先", dto.SortNewest, "year DESC"},
		{"最早优先", dto.SortOldest, "year ASC"},
		{"按名称", dto.SortName, "name ASC"},
		{"默认排序", "", "order_column ASC"},
		{"未识别值回退默认", "garbage", "order_column ASC"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var projects []*model.Project
			tx := applyProjectSort(dryRunDB(t).Model(&model.Project{}), tt.sort).Find(&projects)
			require.NoError(t, tx.Error)

			sql := tx.Statement.SQL.String()
			assert.Contains(t, sql, "ORDER BY")
			assert.Contains(t, sql, tt.want)
		})
	}
}

func TestListSimilarExcludesSource(t *testing.T) {
	db := dryRunDB(t)

	var gotSQL string
	var gotVars []interface{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_query", func(tx *gorm.DB) {
		gotSQL = tx.Statement.SQL.String()
		gotVars = tx.Statement.Vars
	}))

	repo := NewProjectRepository(db)
	_, err := repo.ListSimilar(7, model.CategoryArchitecture, 4)
	require.NoError(t, err)

	// 排除自身id，限定同分类且已发布
	assert.Contains(t, gotSQL, "is_published = ? AND category = ? AND id != ?")
	assert.Contains(t, gotSQL, "LIMIT ?")
	assert.Equal(t, []interface{}{true, model.CategoryArchitecture, int64(7), 4}, gotVars)
}

func TestNormalizeFacet(t *testing.T) {
	assert.Equal(t, "", normalizeFacet("all"))
	assert.Equal(t, "", normalizeFacet(""))
	assert.Equal(t, "interior", normalizeFacet("interior"))
}
