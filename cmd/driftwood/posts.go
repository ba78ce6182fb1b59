package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/assemble"
	"github.com/gorewood/driftwood/internal/ghost"
	"github.com/gorewood/driftwood/internal/index"
	"github.com/gorewood/driftwood/internal/markup"
	"github.com/gorewood/driftwood/internal/output"
)

// postRow describes one post in posts output.
type postRow struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Status   string   `json:"status"`
	Title    string   `json:"title"`
	FileName string   `json:"file_name,omitempty"`
	Tags     []string `json:"tags"`
	Error    string   `json:"error,omitempty"`
}

// newPostsCmd creates the posts command.
func newPostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "posts <export.json>",
		Short: "List the posts of a Ghost export",
		Long: `List the posts and pages of a Ghost export with the file each one is
written to and its visible tags. Internal tags (#name) are not shown.

Examples:
  driftwood posts export.json          # Table of posts
  driftwood posts export.json --json   # Post list as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPosts(cmd, args[0])
		},
	}
}

// runPosts executes the posts command.
func runPosts(cmd *cobra.Command, exportPath string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	data, err := ghost.Load(exportPath)
	if err != nil {
		userErr := output.NewUserErrorWithCause("loading export", err)
		printer.Error(userErr)
		return userErr
	}

	ix := index.Build(data.PostsTags, data.Tags)
	assembler := assemble.New(ix, cfg.Rules(), markup.New())
	rows := buildPostRows(data.Posts, assembler)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":     len(rows),
			"tag_count": ix.TagCount(),
			"posts":     rows,
		})
	}

	if len(rows) == 0 {
		printer.Println("No posts in export")
		return nil
	}

	table := make([][]string, 0, len(rows))
	pages := 0
	for _, row := range rows {
		if row.Kind == ghost.TypePage {
			pages++
		}
		target := row.FileName
		if row.Error != "" {
			target = "(" + row.Error + ")"
		}
		table = append(table, []string{row.Kind, row.Status, target, row.Title, strings.Join(row.Tags, ", ")})
	}
	printer.Table([]string{"KIND", "STATUS", "FILE", "TITLE", "TAGS"}, table)
	printer.Println()
	printer.Println(fmt.Sprintf("%d posts, %d pages, %d tags", len(rows)-pages, pages, ix.TagCount()))
	return nil
}

// buildPostRows describes each post in export order.
func buildPostRows(posts []ghost.Post, assembler *assemble.Assembler) []postRow {
	rows := make([]postRow, 0, len(posts))
	for _, post := range posts {
		row := postRow{
			ID:     post.ID,
			Kind:   "post",
			Status: post.Status,
			Title:  post.Title,
			Tags:   assembler.VisibleTags(post.ID),
		}
		if post.IsPage() {
			row.Kind = ghost.TypePage
		}
		if name, err := assemble.Target(post); err != nil {
			row.Error = err.Error()
		} else {
			row.FileName = name
		}
		rows = append(rows, row)
	}
	return rows
}
