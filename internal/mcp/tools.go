package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/driftwood/internal/assemble"
	"github.com/gorewood/driftwood/internal/render"
)

// --- List posts tool ---

// ListPostsInput is the input for the list_posts tool.
type ListPostsInput struct {
	ExportPath string `json:"export_path" jsonschema:"path to the Ghost export JSON file"`
}

// PostSummary describes one post of the export.
type PostSummary struct {
	ID       string   `json:"id"                 jsonschema:"Ghost post id"`
	Title    string   `json:"title"              jsonschema:"post title"`
	Slug     string   `json:"slug"               jsonschema:"post slug"`
	Kind     string   `json:"kind"               jsonschema:"post or page"`
	Status   string   `json:"status"             jsonschema:"Ghost status (published, draft, ...)"`
	FileName string   `json:"file_name,omitempty" jsonschema:"file the post is written to"`
	Tags     []string `json:"tags"               jsonschema:"visible tag names in order"`
	Error    string   `json:"error,omitempty"    jsonschema:"why the post cannot be converted"`
}

// ListPostsOutput is the output for the list_posts tool.
type ListPostsOutput struct {
	Count    int           `json:"count"     jsonschema:"number of posts and pages"`
	TagCount int           `json:"tag_count" jsonschema:"number of tags in the export"`
	Posts    []PostSummary `json:"posts"     jsonschema:"posts in export order"`
}

func handleListPosts(opts Options) mcp.ToolHandlerFor[ListPostsInput, ListPostsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListPostsInput) (*mcp.CallToolResult, ListPostsOutput, error) {
		sess, err := loadSession(input.ExportPath, opts)
		if err != nil {
			return nil, ListPostsOutput{}, err
		}

		posts := make([]PostSummary, 0, len(sess.data.Posts))
		for _, post := range sess.data.Posts {
			summary := PostSummary{
				ID:     post.ID,
				Title:  post.Title,
				Slug:   post.Slug,
				Kind:   postKind(post),
				Status: post.Status,
				Tags:   sess.assembler.VisibleTags(post.ID),
			}
			if name, err := assemble.Target(post); err != nil {
				summary.Error = err.Error()
			} else {
				summary.FileName = name
			}
			posts = append(posts, summary)
		}

		return nil, ListPostsOutput{
			Count:    len(posts),
			TagCount: sess.index.TagCount(),
			Posts:    posts,
		}, nil
	}
}

// --- Render post tool ---

// RenderPostInput is the input for the render_post tool.
type RenderPostInput struct {
	ExportPath   string `json:"export_path"             jsonschema:"path to the Ghost export JSON file"`
	Post         string `json:"post"                    jsonschema:"slug or id of the post to render"`
	TemplatePath string `json:"template_path,omitempty" jsonschema:"template file to use instead of the configured one"`
}

// RenderPostOutput is the output for the render_post tool.
type RenderPostOutput struct {
	FileName string `json:"file_name" jsonschema:"file the post would be written to"`
	Template string `json:"template"  jsonschema:"where the template was loaded from"`
	Content  string `json:"content"   jsonschema:"rendered file content"`
}

func handleRenderPost(opts Options) mcp.ToolHandlerFor[RenderPostInput, RenderPostOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderPostInput) (*mcp.CallToolResult, RenderPostOutput, error) {
		if input.Post == "" {
			return nil, RenderPostOutput{}, errors.New("post is required")
		}
		sess, err := loadSession(input.ExportPath, opts)
		if err != nil {
			return nil, RenderPostOutput{}, err
		}

		post, ok := sess.findPost(input.Post)
		if !ok {
			return nil, RenderPostOutput{}, fmt.Errorf("no post with slug or id %q", input.Post)
		}

		templatePath := input.TemplatePath
		if templatePath == "" {
			templatePath = opts.TemplatePath
		}
		tmpl, err := render.Load(templatePath)
		if err != nil {
			return nil, RenderPostOutput{}, err
		}

		record, fileName, err := sess.assembler.Assemble(post)
		if err != nil {
			return nil, RenderPostOutput{}, err
		}
		content, err := tmpl.Render(record)
		if err != nil {
			return nil, RenderPostOutput{}, err
		}

		return nil, RenderPostOutput{
			FileName: fileName,
			Template: tmpl.Describe(),
			Content:  content,
		}, nil
	}
}
