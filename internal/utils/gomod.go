package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// GoModParser provides utilities for locating and parsing go.mod files
type GoModParser struct{}

// NewGoModParser creates a new go.mod parser
func NewGoModParser() *GoModParser {
	return &GoModParser{}
}

// ParseModuleName extracts the module name from a go.mod file
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	cleanPath := filepath.Clean(goModPath)
	if !strings.HasSuffix(cleanPath, "go.mod") {
		return "", fmt.Errorf("file is not a go.mod file: %s", goModPath)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}

	modFile, err := modfile.Parse(cleanPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod file: %w", err)
	}

	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in go.mod")
	}

	return modFile.Module.Mod.Path, nil
}

// FindGoModFile searches for a go.mod file starting from the given directory
// and walking up
func (p *GoModParser) FindGoModFile(startDir string) (string, error) {
	currentDir := filepath.Clean(startDir)

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if info, err := os.Stat(goModPath); err == nil && !info.IsDir() {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod file not found above %s", startDir)
}

// BuildPackagePath joins a module name and a module-relative directory into
// an import path
func (p *GoModParser) BuildPackagePath(moduleName, packageDir string) (string, error) {
	if moduleName == "" {
		return "", fmt.Errorf("module name cannot be empty")
	}

	dir := filepath.ToSlash(filepath.Clean(packageDir))
	if dir == "." || dir == "" {
		return moduleName, nil
	}
	dir = strings.TrimPrefix(dir, "./")
	if strings.HasPrefix(dir, "..") {
		return "", fmt.Errorf("package directory %s is outside the module", packageDir)
	}

	return moduleName + "/" + dir, nil
}

// ResolvePackage determines the import path of the package in dir by locating
// the enclosing go.mod and joining the module name with the relative path
func (p *GoModParser) ResolvePackage(dir string) (string, error) {
	goModPath, err := p.FindGoModFile(dir)
	if err != nil {
		return "", err
	}

	moduleName, err := p.ParseModuleName(goModPath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(filepath.Dir(goModPath), dir)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s: %w", dir, err)
	}

	return p.BuildPackagePath(moduleName, rel)
}
