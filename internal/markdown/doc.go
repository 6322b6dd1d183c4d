// Package markdown renders schema descriptors into the documentation format
// produced by `zix generate-docs`, and optionally converts that Markdown into
// an HTML preview with goldmark.
package markdown
