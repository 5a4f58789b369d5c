package theme

import (
	"os"

	"git.home.luguber.info/inful/docinclude/internal/util/fswalk"
	"git.home.luguber.info/inful/docinclude/internal/util/sets"
)

// Env lists the files a theme makes available.
type Env struct {
	dirs []string
}

// ListTemplates returns the slash-separated names of every file below the
// theme dirs, sorted and de-duplicated. A non-nil filter keeps only names
// for which it returns true.
func (e *Env) ListTemplates(filter func(name string) bool) ([]string, error) {
	names := sets.New[string]()
	for _, dir := range e.dirs {
		err := fswalk.Walk(fswalk.OS(dir), func(rel string, info os.FileInfo) error {
			if info.IsDir() {
				return nil
			}
			if filter == nil || filter(rel) {
				names.Add(rel)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return sets.Sorted(names), nil
}
