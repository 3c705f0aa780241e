package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardListScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  AwardList
	}{
		{
			name:  "原生JSON数组",
			value: []byte(`[{"name":"Gold Award","organization":"AIA","year":2023,"featured":true}]`),
			want: AwardList{
				{Name: "Gold Award", Organization: "AIA", Year: 2023, Featured: true},
			},
		},
		{
			name:  "二次编码的JSON字符串",
			value: []byte(`"[{\"name\":\"Design Prize\",\"year\":2022}]"`),
			want: AwardList{
				{Name: "Design Prize", Year: 2022},
			},
		},
		{
			name:  "字符串形态的列值",
			value: `[{"name":"Honor","year":2021}]`,
			want: AwardList{
				{Name: "Honor", Year: 2021},
			},
		},
		{
			name:  "null按空列表处理",
			value: nil,
			want:  AwardList{},
		},
		{
			name:  "空字节按空列表处理",
			value: []byte{},
			want:  AwardList{},
		},
		{
			name:  "无法识别的值按空列表处理",
			value: []byte(`{"not":"a list"}`),
			want:  AwardList{},
		},
		{
			name:  "二次编码但内容不是数组",
			value: []byte(`"plain text"`),
			want:  AwardList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list AwardList
			err := list.Scan(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, list)
		})
	}
}

func TestAwardListScanUnsupportedType(t *testing.T) {
	var list AwardList
	err := list.Scan(123)
	assert.Error(t, err)
}

func TestAwardListValue(t *testing.T) {
	empty := AwardList{}
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	list := AwardList{{Name: "Gold", Year: 2023}}
	v, err = list.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Gold","organization":"","year":2023,"description":"","featured":false}]`, string(v.([]byte)))
}

func TestStringListScan(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte(`["a.jpg","b.jpg"]`)))
	assert.Equal(t, StringList{"a.jpg", "b.jpg"}, list)

	require.NoError(t, list.Scan(nil))
	assert.Equal(t, StringList{}, list)

	// 非法JSON按空列表处理
	require.NoError(t, list.Scan([]byte(`not json`)))
	assert.Equal(t, StringList{}, list)
}

func TestStringMapScan(t *testing.T) {
	var m StringMap
	require.NoError(t, m.Scan([]byte(`{"architect":"Jane"}`)))
	assert.Equal(t, StringMap{"architect": "Jane"}, m)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, StringMap{}, m)

	require.NoError(t, m.Scan([]byte(`[1,2]`)))
	assert.Equal(t, StringMap{}, m)
}

func TestStringMapValue(t *testing.T) {
	empty := StringMap{}
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("architecture"))
	assert.True(t, IsValidCategory("interior"))
	assert.True(t, IsValidCategory("landscape"))
	assert.False(t, IsValidCategory("all"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Architecture"))
}

func TestProjectMediaPaths(t *testing.T) {
	p := &Project{
		CoverImage:       "covers/main.jpg",
		Images:           StringList{"g/1.jpg", "g/2.jpg"},
		AdditionalImages: StringList{"extra/3.jpg"},
	}
	assert.Equal(t, []string{"covers/main.jpg", "g/1.jpg", "g/2.jpg", "extra/3.jpg"}, p.MediaPaths())

	empty := &Project{}
	assert.Empty(t, empty.MediaPaths())
}
