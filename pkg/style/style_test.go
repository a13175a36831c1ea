package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryStyle(t *testing.T) {
	assert.Equal(t, ModelStyle.GetForeground(), CategoryStyle("gql").GetForeground())
	assert.Equal(t, ModelStyle.GetForeground(), CategoryStyle("graphql").GetForeground())
	assert.Equal(t, DirStyle.GetForeground(), CategoryStyle("dirs").GetForeground())
	assert.Equal(t, ConfigStyle.GetForeground(), CategoryStyle("json").GetForeground())
	assert.Equal(t, FileStyle.GetForeground(), CategoryStyle("js").GetForeground())
}

func TestIndent(t *testing.T) {
	assert.True(t, strings.HasPrefix(Indent("x", 2), "    "))
	assert.Contains(t, Indent("x", 0), "x")
}
