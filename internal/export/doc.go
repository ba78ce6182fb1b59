// Package export writes one markdown file per Ghost post.
//
// An [Exporter] walks the posts of an export in input order. Each post is
// assembled into a render record, rendered through the post template and
// written to the output directory:
//
//	exp := export.New(export.Options{Dir: "out"}, assembler, tmpl, printer)
//	result := exp.Export(data.Posts)
//	if err := result.Err(); err != nil {
//		// some posts failed; the rest were written
//	}
//
// # File Naming
//
// Posts are written to <date>-<slug>.md and pages to page-<slug>.md.
// Existing files are overwritten. Each file is written to a temporary file
// in the same directory and renamed into place, so a reader never sees a
// partial file.
//
// # Failures
//
// A post that fails at any stage is reported and
// recorded in [Result.Failed]; the remaining posts are still processed.
// Rendered output whose front matter does not parse only produces a
// warning, since the template is user-supplied.
package export
