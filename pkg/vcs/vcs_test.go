package vcs_test

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/haliatech/sassy/pkg/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTree(t *testing.T) (root string, items []string) {
	t.Helper()
	root = filepath.Join(t.TempDir(), "blog")

	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	readme := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# blog\n"), 0o644))
	nested := filepath.Join(root, "docs", "index.md")
	require.NoError(t, os.WriteFile(nested, []byte("docs\n"), 0o644))

	return root, []string{readme, filepath.Join(root, "docs")}
}

func TestGitInitializerSeedsRepository(t *testing.T) {
	root, items := seedTree(t)

	commit, err := vcs.NewGit("Bootstrap project.").Init(root, items)
	require.NoError(t, err)
	assert.Len(t, commit, 40)

	repo, err := git.PlainOpen(root)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, commit, head.Hash().String())

	obj, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "Bootstrap project.", obj.Message)
	assert.Equal(t, "sassy", obj.Author.Name)

	// Directory items are staged recursively.
	tree, err := obj.Tree()
	require.NoError(t, err)
	_, err = tree.File("README.md")
	assert.NoError(t, err)
	_, err = tree.File("docs/index.md")
	assert.NoError(t, err)
}

func TestGitInitializerDefaultMessage(t *testing.T) {
	root, items := seedTree(t)

	commit, err := vcs.NewGit("").Init(root, items)
	require.NoError(t, err)

	repo, err := git.PlainOpen(root)
	require.NoError(t, err)
	obj, err := repo.CommitObject(headHash(t, repo))
	require.NoError(t, err)

	assert.Equal(t, vcs.DefaultCommitMessage, obj.Message)
	assert.Equal(t, commit, obj.Hash.String())
}

func TestGitInitializerRejectsExistingRepository(t *testing.T) {
	root, items := seedTree(t)

	_, err := vcs.NewGit("").Init(root, items)
	require.NoError(t, err)

	_, err = vcs.NewGit("").Init(root, items)
	assert.Error(t, err)
}

func headHash(t *testing.T, repo *git.Repository) plumbing.Hash {
	t.Helper()
	head, err := repo.Head()
	require.NoError(t, err)
	return head.Hash()
}
