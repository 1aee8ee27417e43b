// Package template defines the rendering engine seam used by the email and
// text renderers. The gotemplate subpackage provides the default
// implementation backed by pongo2.
package template
