package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModuleName(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "delegate_gomod_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	goModPath := filepath.Join(tempDir, "go.mod")
	content := "module example.com/testmod\n\ngo 1.25\n"
	require.NoError(t, os.WriteFile(goModPath, []byte(content), 0o644))

	parser := NewGoModParser()
	name, err := parser.ParseModuleName(goModPath)
	require.NoError(t, err)
	assert.Equal(t, "example.com/testmod", name)
}

func TestParseModuleName_Errors(t *testing.T) {
	parser := NewGoModParser()

	_, err := parser.ParseModuleName("/tmp/not-a-modfile.txt")
	assert.Error(t, err)

	_, err = parser.ParseModuleName(filepath.Join("/nonexistent", "go.mod"))
	assert.Error(t, err)

	tempDir, err := os.MkdirTemp("", "delegate_gomod_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	goModPath := filepath.Join(tempDir, "go.mod")
	require.NoError(t, os.WriteFile(goModPath, []byte("go 1.25\n"), 0o644))
	_, err = parser.ParseModuleName(goModPath)
	assert.Error(t, err, "go.mod without module declaration")
}

func TestFindGoModFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "delegate_gomod_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	goModPath := filepath.Join(tempDir, "go.mod")
	require.NoError(t, os.WriteFile(goModPath, []byte("module example.com/m\n"), 0o644))

	nested := filepath.Join(tempDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	parser := NewGoModParser()
	found, err := parser.FindGoModFile(nested)
	require.NoError(t, err)
	assert.Equal(t, goModPath, found)
}

func TestBuildPackagePath(t *testing.T) {
	parser := NewGoModParser()

	tests := []struct {
		name    string
		module  string
		dir     string
		want    string
		wantErr bool
	}{
		{"root", "example.com/m", ".", "example.com/m", false},
		{"nested", "example.com/m", "internal/files", "example.com/m/internal/files", false},
		{"dot slash", "example.com/m", "./pkg", "example.com/m/pkg", false},
		{"empty module", "", "pkg", "", true},
		{"outside module", "example.com/m", "../other", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.BuildPackagePath(tt.module, tt.dir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePackage(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "delegate_gomod_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "go.mod"), []byte("module example.com/m\n"), 0o644))
	nested := filepath.Join(tempDir, "internal", "files")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	parser := NewGoModParser()

	path, err := parser.ResolvePackage(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/m/internal/files", path)

	path, err = parser.ResolvePackage(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/m", path)
}
