// Package build provides the pipeline that assembles a site's file
// collection.
//
// A run loads the theme, discovers the files below docs_dir, adds the
// theme's files and then hands the collection through every files hook the
// site configuration lists, in order. All execution paths (the files
// command, tests) route through BuildService.
//
// The package also defines sentinel errors classifying which stage failed.
// They are wrapped with context at the call site.
package build
