package types_test

import (
	"encoding/json"
	"testing"

	"github.com/durp-dev/durp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "single_extension", file: "LilBean.gql", want: "gql"},
		{name: "multi_segment", file: "a.b.c", want: "b.c"},
		{name: "no_dot", file: "Makefile", want: ""},
		{name: "dot_prefixed", file: ".env", want: "env"},
		{name: "dot_prefixed_multi", file: ".eslintrc.json", want: "eslintrc.json"},
		{name: "trailing_dot", file: "weird.", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.CategoryKey(tt.file))
		})
	}
}

func TestDirectoryListing_Helpers(t *testing.T) {
	l := types.NewDirectoryListing("/p")
	l.Add("gql", "LilBean.gql")
	l.Add("graphql", "BigBean.graphql")
	l.Add("json", "bean.json")
	l.Add("json", "config.json")
	l.Add(types.DirsKey, "storage")

	assert.Equal(t, []string{"bean.json", "config.json"}, l.Get("json"))
	assert.Nil(t, l.Get("js"))
	assert.True(t, l.Has("gql"))
	assert.False(t, l.Has("gqls"))
	assert.Equal(t, 2, l.Count("gql", "graphql"))
	assert.Equal(t, 0, l.Count("js"))
	assert.Equal(t, []string{"storage"}, l.Dirs())
	assert.Equal(t, []string{"dirs", "gql", "graphql", "json"}, l.Keys())
}

func TestDirectoryListing_AddOnZeroValue(t *testing.T) {
	var l types.DirectoryListing
	l.Add("", "README")
	assert.Equal(t, []string{"README"}, l.Get(""))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/p/child", types.JoinPath("/p", "child"))
	assert.Equal(t, "/p/child", types.JoinPath("/p/", "child"))
	assert.Equal(t, "/p/child", types.NewDirectoryListing("/p/").ChildPath("child"))
	assert.True(t, types.HasTrailingSeparator("/p/"))
	assert.False(t, types.HasTrailingSeparator("/p"))
}

func TestDirectoryListing_JSON(t *testing.T) {
	l := types.NewDirectoryListing("/p/")
	l.Add("path", "odd.path")

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/p/","categories":{"path":["odd.path"]}}`, string(data))
}
