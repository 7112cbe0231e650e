package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Specs and scripts ship inside the binary. A file with the same relative
// path under Dir overrides the embedded copy.
//
//go:embed *.yaml
var specFS embed.FS

//go:embed scripts/*.tengo
var scriptFS embed.FS

// Dir is the on-disk override directory, relative to the working directory.
var Dir = "prefabs"

// Load reads a spec such as "agent.yaml" or "prefabs/agent.yaml".
func Load(name string) ([]byte, error) {
	return read(specFS, specPath(name))
}

// LoadScript reads a policy script by bare name or by a path under
// prefabs/scripts.
func LoadScript(name string) ([]byte, error) {
	return read(scriptFS, scriptPath(name))
}

// ModTime reports when the on-disk override of a spec last changed.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(specPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Names lists the embedded specs.
func Names() []string {
	names, _ := fs.Glob(specFS, "*.yaml")
	sort.Strings(names)
	return names
}

func read(fsys embed.FS, rel string) ([]byte, error) {
	if rel == "" {
		return nil, fmt.Errorf("prefabs: empty name: %w", fs.ErrNotExist)
	}
	if data, err := os.ReadFile(diskPath(rel)); err == nil {
		return data, nil
	}
	return fsys.ReadFile(rel)
}

func specPath(name string) string {
	return trimDirs(name, "prefabs/")
}

func scriptPath(name string) string {
	s := trimDirs(name, "prefabs/", "scripts/")
	if s == "" {
		return ""
	}
	return path.Join("scripts", s)
}

func trimDirs(name string, dirs ...string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	for _, d := range dirs {
		s = strings.TrimPrefix(s, d)
	}
	return s
}

func diskPath(rel string) string {
	return filepath.Join(Dir, filepath.FromSlash(rel))
}
