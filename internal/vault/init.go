// Package vault materializes the slatekore folder tree and static documents
// into an Obsidian vault.
package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/slatekore/slatekore/internal/logger"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Initialize brings target into the canonical vault state: the folder tree,
// the note templates, GEMINI.md and the agent workflows. Existing files are
// left untouched and reported as skipped unless force is set, in which case
// they are overwritten in full. Every step is idempotent, so re-running after
// a failure resumes where the previous run stopped.
//
// Any filesystem failure is returned as an *IOError.
func Initialize(target string, force bool) (*Result, error) {
	log := logger.ForComponent("vault")
	result := &Result{Target: target}

	if err := os.MkdirAll(target, dirPerm); err != nil {
		return nil, ioErr("mkdir", target, err)
	}

	// 1. Folder tree
	for _, rel := range folders {
		created, err := ensureDir(target, rel)
		if err != nil {
			return nil, err
		}
		if created {
			log.Debug("created directory", "path", rel)
			result.created(KindDir, rel)
		}
	}

	// 2. Templates
	if _, err := ensureDir(target, TemplatesDir); err != nil {
		return nil, err
	}
	templates, err := Templates()
	if err != nil {
		return nil, err
	}
	for _, doc := range templates {
		if err := place(target, doc, force, result); err != nil {
			return nil, err
		}
	}

	// 3. GEMINI.md
	root, err := RootConfig()
	if err != nil {
		return nil, err
	}
	if err := place(target, root, force, result); err != nil {
		return nil, err
	}

	// 4. Workflows
	if _, err := ensureDir(target, WorkflowsDir); err != nil {
		return nil, err
	}
	workflows, err := Workflows()
	if err != nil {
		return nil, err
	}
	for _, doc := range workflows {
		if err := place(target, doc, force, result); err != nil {
			return nil, err
		}
	}

	log.Debug("vault initialized",
		"target", target,
		"created", len(result.Created),
		"skipped", len(result.Skipped))
	return result, nil
}

// ensureDir creates target/rel and its parents. It reports whether the
// directory was absent before the call.
func ensureDir(target, rel string) (bool, error) {
	abs := filepath.Join(target, filepath.FromSlash(rel))

	info, err := os.Stat(abs)
	if err == nil && info.IsDir() {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, ioErr("stat", abs, err)
	}

	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return false, ioErr("mkdir", abs, err)
	}
	return true, nil
}

// place writes doc under target unless it already exists and force is off.
// An overwrite keeps the existing file's permissions and writes through a
// symlink instead of replacing it.
func place(target string, doc Document, force bool, result *Result) error {
	log := logger.ForComponent("vault")
	abs := filepath.Join(target, filepath.FromSlash(doc.Path))

	info, err := os.Stat(abs)
	switch {
	case err == nil && !force:
		log.Debug("skipped existing file", "kind", doc.Kind, "path", doc.Path)
		result.skipped(doc.Kind, doc.Path)
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return ioErr("stat", abs, err)
	}

	dest, perm := abs, os.FileMode(filePerm)
	overwrite := err == nil
	if overwrite {
		perm = info.Mode().Perm()
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return ioErr("stat", abs, err)
		}
		dest = resolved
	}

	if err := writeFileAtomic(dest, []byte(doc.Content), perm); err != nil {
		return ioErr("write", dest, err)
	}
	log.Debug("wrote file", "kind", doc.Kind, "path", doc.Path, "overwrite", overwrite)
	result.created(doc.Kind, doc.Path)
	return nil
}
