package index

import (
	"slices"
	"testing"

	"github.com/gorewood/driftwood/internal/ghost"
)

func TestBuild(t *testing.T) {
	tags := []ghost.Tag{
		{ID: "t1", Name: "Go"},
		{ID: "t2", Name: "Rust"},
		{ID: "t3", Name: "#internal", Visibility: ghost.VisibilityInternal},
	}
	assocs := []ghost.PostTag{
		{PostID: "p1", TagID: "t2", SortOrder: 1},
		{PostID: "p2", TagID: "t1"},
		{PostID: "p1", TagID: "t3", SortOrder: 0},
		{PostID: "p1", TagID: "t1"},
		{PostID: "p1", TagID: "missing"},
	}

	ix := Build(assocs, tags)

	if ix.TagCount() != 3 {
		t.Errorf("TagCount() = %d, want 3", ix.TagCount())
	}
	if ix.PostCount() != 2 {
		t.Errorf("PostCount() = %d, want 2", ix.PostCount())
	}

	// Association order is kept; sort_order is ignored.
	want := []string{"t2", "t3", "t1", "missing"}
	if got := ix.TagIDs("p1"); !slices.Equal(got, want) {
		t.Errorf("TagIDs(p1) = %v, want %v", got, want)
	}
	if got := ix.TagIDs("p2"); !slices.Equal(got, []string{"t1"}) {
		t.Errorf("TagIDs(p2) = %v, want [t1]", got)
	}
	if got := ix.TagIDs("nope"); len(got) != 0 {
		t.Errorf("TagIDs(nope) = %v, want empty", got)
	}

	tag, ok := ix.Tag("t3")
	if !ok || !tag.Internal() {
		t.Errorf("Tag(t3) = %+v, %v; want internal tag", tag, ok)
	}
	if _, ok := ix.Tag("missing"); ok {
		t.Error("Tag(missing) should not be found")
	}
}

func TestBuild_Empty(t *testing.T) {
	ix := Build(nil, nil)
	if ix.TagCount() != 0 || ix.PostCount() != 0 {
		t.Errorf("empty Build() = %d tags, %d posts", ix.TagCount(), ix.PostCount())
	}
	if got := ix.TagIDs("p1"); got != nil {
		t.Errorf("TagIDs() = %v, want nil", got)
	}
}
