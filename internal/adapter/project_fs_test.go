package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProjectFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalProjectFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "requirements.txt")
	content := "requests>=2\nflask\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalProjectFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalProjectFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "Cargo.lock")
	content := []byte("version = 3\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(path)
	require.NoError(t, err)

	assert.Equal(t, expected, hash)
}

func TestLocalProjectFSAdapter_FileInfoAndExists(t *testing.T) {
	adapter := NewLocalProjectFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "package.json")
	writeTestFile(t, path, "{}\n")

	info, err := adapter.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(root)
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")

	assert.True(t, adapter.Exists(path))
	assert.False(t, adapter.Exists(filepath.Join(root, "missing.json")))
}

func TestLocalProjectFSAdapter_CreateTempDirAndRemoveAll(t *testing.T) {
	adapter := NewLocalProjectFSAdapter()

	tmp, err := adapter.CreateTempDir("dtm-test-*")
	require.NoError(t, err)

	fi, err := os.Stat(tmp)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	writeTestFile(t, filepath.Join(tmp, "go.mod"), "module example.com/x\n")

	require.NoError(t, adapter.RemoveAll(tmp))

	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalProjectFSAdapter_CopyDir(t *testing.T) {
	adapter := NewLocalProjectFSAdapter()

	src := t.TempDir()
	dst := t.TempDir()

	subDir := filepath.Join(src, "tests")
	mustMkdir(t, subDir)
	writeTestFile(t, filepath.Join(subDir, "test_app.py"), "def test_ok():\n    pass\n")
	require.NoError(t, adapter.WriteFile(filepath.Join(src, "requirements.txt"), []byte("requests\n"), 0o644))

	for _, skipped := range []string{".git", "node_modules", "target", siteDirName} {
		dir := filepath.Join(src, skipped)
		mustMkdir(t, dir)
		writeTestFile(t, filepath.Join(dir, "junk"), "x")
	}

	require.NoError(t, adapter.CopyDir(src, dst))

	assert.FileExists(t, filepath.Join(dst, "tests", "test_app.py"))
	assert.FileExists(t, filepath.Join(dst, "requirements.txt"))

	for _, skipped := range []string{".git", "node_modules", "target", siteDirName} {
		assert.NoDirExistsf(t, filepath.Join(dst, skipped), "CopyDir() copied %s", skipped)
	}
}

func TestLocalProjectFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalProjectFSAdapter()

	joined := adapter.JoinPath("/tmp", "project", "Cargo.toml")
	assert.Equal(t, filepath.Join("/tmp", "project", "Cargo.toml"), joined)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}
