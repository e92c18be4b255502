// Package template declares the template engine contract used by the
// markdown and text renderers. The gotemplate subpackage provides the
// pongo2-backed implementation.
package template
