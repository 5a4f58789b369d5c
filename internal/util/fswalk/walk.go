// Package fswalk walks billy filesystems depth-first with directory entries
// visited in ascending name order, so every tree walk in docinclude yields a
// stable order independent of the underlying filesystem.
package fswalk

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"git.home.luguber.info/inful/docinclude/internal/logfields"
)

// SkipDir may be returned by a WalkFunc. For a directory it prunes that
// directory; for a file it skips the remaining entries of the containing
// directory.
var SkipDir = fs.SkipDir

// WalkFunc is called for every entry below the root. rel is slash-separated
// and relative to the root; the root itself is never reported.
type WalkFunc func(rel string, info os.FileInfo) error

// OS returns a billy filesystem rooted at dir on the local disk.
func OS(dir string) billy.Filesystem {
	return osfs.New(dir)
}

// Walk visits every entry of fsys, resolving symbolic links. A link is
// reported with the info of its target, and a link to a directory is
// descended into under the link's own path. A directory whose real path is
// already being walked further up is reported but not entered again, which
// stops link loops. Broken links are reported with their own info.
func Walk(fsys billy.Filesystem, fn WalkFunc) error {
	w := &walker{fsys: fsys, active: make(map[string]bool)}
	root, err := w.realPath("")
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	w.active[root] = true
	return w.walkDir("", fn)
}

type walker struct {
	fsys   billy.Filesystem
	active map[string]bool // real paths of the directories being walked
}

func (w *walker) realPath(rel string) (string, error) {
	return filepath.EvalSymlinks(filepath.Join(w.fsys.Root(), filepath.FromSlash(rel)))
}

// resolve swaps a link's info for its target's.
func (w *walker) resolve(rel string, info os.FileInfo) os.FileInfo {
	if info.Mode()&os.ModeSymlink == 0 {
		return info
	}
	target, err := w.fsys.Stat(rel)
	if err != nil {
		slog.Debug("Broken symbolic link", logfields.Path(rel), logfields.Error(err))
		return info
	}
	return target
}

// enter reports whether the directory rel should be descended into and
// returns a function releasing it once its walk is done.
func (w *walker) enter(rel string) (bool, func(), error) {
	resolved, err := w.realPath(rel)
	if err != nil {
		return false, nil, fmt.Errorf("resolve %s: %w", rel, err)
	}
	if w.active[resolved] {
		slog.Debug("Skipping symbolic link loop", logfields.Path(rel), logfields.Target(resolved))
		return false, nil, nil
	}
	w.active[resolved] = true
	return true, func() { delete(w.active, resolved) }, nil
}

func (w *walker) walkDir(dir string, fn WalkFunc) error {
	name := dir
	if name == "" {
		name = "."
	}
	infos, err := w.fsys.ReadDir(name)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", name, err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	for _, info := range infos {
		rel := path.Join(dir, info.Name())
		info = w.resolve(rel, info)
		err := fn(rel, info)
		if info.IsDir() {
			if errors.Is(err, SkipDir) {
				continue
			}
			if err != nil {
				return err
			}
			ok, release, err := w.enter(rel)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			err = w.walkDir(rel, fn)
			release()
			if err != nil {
				return err
			}
			continue
		}
		if errors.Is(err, SkipDir) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
