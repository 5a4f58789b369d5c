package theme

import "sync"

// Defaults describes what a theme declares about itself when it ships no
// mkdocs_theme.yml on disk.
type Defaults struct {
	Name            string
	StaticTemplates []string
	Locale          string
}

var (
	regMu sync.RWMutex
	reg   = map[string]Defaults{
		"mkdocs": {
			Name:            "mkdocs",
			StaticTemplates: []string{"404.html", "sitemap.xml"},
			Locale:          "en",
		},
		"readthedocs": {
			Name:            "readthedocs",
			StaticTemplates: []string{"404.html", "sitemap.xml"},
			Locale:          "en",
		},
	}
)

// RegisterDefaults registers defaults for a theme name. Existing entries are
// kept.
func RegisterDefaults(d Defaults) {
	if d.Name == "" {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[d.Name]; !ok {
		reg[d.Name] = d
	}
}

// LookupDefaults returns the registered defaults for name.
func LookupDefaults(name string) (Defaults, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	d, ok := reg[name]
	return d, ok
}
