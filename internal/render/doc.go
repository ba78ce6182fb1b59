// Package render loads post templates and renders records through them.
//
// Templates are Go text/template documents executed with a value whose
// Post field is the *assemble.RenderRecord for one post:
//
//	---
//	title: {{ .Post.Title }}
//	date: {{ .Post.PublishedAt }}
//	tags: {{ yaml .Post.Tags }}
//	---
//
//	{{ .Post.Markdown }}
//
// Templates are resolved in order:
//  1. an explicit path (--template, config file or DRIFTWOOD_TEMPLATE)
//  2. .driftwood/templates/post.md (project-local)
//  3. <config dir>/templates/post.md (user global)
//  4. the built-in Hugo template (embedded in the binary)
//
// Besides the text/template builtins, templates can call join (strings.Join)
// and yaml, which renders a value as single-line YAML.
package render
