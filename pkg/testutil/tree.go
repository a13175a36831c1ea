package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/durp-dev/durp/pkg/filesystem"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Tree describes a directory tree: keys are slash-separated relative paths,
// values are file contents. A key ending in "/" creates a directory.
type Tree map[string]string

// sortedKeys returns keys in lexical order so parents are created first
func (tr Tree) sortedKeys() []string {
	keys := make([]string, 0, len(tr))
	for k := range tr {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteTree materializes tree under root on the real filesystem
func WriteTree(t *testing.T, root string, tree Tree) {
	t.Helper()

	for _, rel := range tree.sortedKeys() {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(tree[rel]), 0644))
	}
}

// TempTree writes tree into a fresh temporary directory and returns its path
func TempTree(t *testing.T, tree Tree) string {
	t.Helper()

	root := t.TempDir()
	WriteTree(t, root, tree)
	return root
}

// MemTree builds tree in memory, rooted at "/", and returns it as a types.FS
func MemTree(t *testing.T, tree Tree) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, rel := range tree.sortedKeys() {
		full := "/" + strings.TrimPrefix(rel, "/")
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, mem.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, mem.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(mem, full, []byte(tree[rel]), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

// ComponentFiles returns the files of a complete, valid sample component
// under prefix: a marker, a config, one model of each kind and a storage
// subtree with resolvers.
func ComponentFiles(prefix string) Tree {
	p := strings.TrimSuffix(prefix, "/") + "/"
	return Tree{
		p + "bean.json":                    `{"name": "bean"}`,
		p + "config.json":                  `{}`,
		p + "LilBean.gql":                  "type LilBean { id: ID! }\n",
		p + "BigBean.graphql":              "type BigBean { id: ID! }\n",
		p + "storage/aws/beanResolver1.js": "module.exports = {}\n",
		p + "storage/aws/beanResolver2.js": "module.exports = {}\n",
	}
}

// ComponentStructure is the sample project used across package tests:
//
//	testComponentDir1/aComponent       marker only, no models
//	testComponentDir1/notAComponent    no bean.json, has corn.json
//	testComponentDir2/aComponent       one valid component
//	testComponentDir3/aComponent{,2}   two siblings
//	testComponentDir4/...              four components, two nested
func ComponentStructure() Tree {
	tree := Tree{
		"testComponentDir1/aComponent/bean.json":    `{}`,
		"testComponentDir1/notAComponent/corn.json": `{}`,
		"testComponentDir1/notAComponent/a.gql":     "type A { id: ID! }\n",
	}
	for _, prefix := range []string{
		"testComponentDir2/aComponent",
		"testComponentDir3/aComponent",
		"testComponentDir3/aComponent2",
		"testComponentDir4/aComponent",
		"testComponentDir4/aComponent2",
		"testComponentDir4/random_subdir/aComponent3",
		"testComponentDir4/another_random_subdir/aComponent4",
	} {
		for k, v := range ComponentFiles(prefix) {
			tree[k] = v
		}
	}
	return tree
}
