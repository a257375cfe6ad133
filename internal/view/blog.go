package view

import (
	"strings"

	"github.com/example/modernblog/internal/model"
)

// PostFilter selects blog posts. Zero values select everything: an empty
// query matches all posts, an empty category means no category filter, an
// empty tag list means no tag filter.
type PostFilter struct {
	Query    string
	Category string
	Tags     []string
}

// FilterPosts returns the posts matching the filter, keeping their order.
// A post matches when the query is a case-insensitive substring of its
// title or content, its category equals the selected one, and it carries
// every selected tag.
func FilterPosts(posts []model.Post, f PostFilter) []model.Post {
	query := strings.ToLower(f.Query)

	matched := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if query != "" &&
			!strings.Contains(strings.ToLower(post.Title), query) &&
			!strings.Contains(strings.ToLower(post.Content), query) {
			continue
		}
		if f.Category != "" && post.Category != f.Category {
			continue
		}
		if !hasAllTags(post.Tags, f.Tags) {
			continue
		}
		matched = append(matched, post)
	}
	return matched
}

func hasAllTags(tags, wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, tag := range tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PostCategories returns the distinct post categories in first-seen order.
func PostCategories(posts []model.Post) []string {
	return distinct(posts, func(p model.Post) []string { return []string{p.Category} })
}

// PostTags returns the distinct tags across all posts in first-seen order.
func PostTags(posts []model.Post) []string {
	return distinct(posts, func(p model.Post) []string { return p.Tags })
}

func distinct[T any](items []T, keys func(T) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		for _, key := range keys(item) {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	return out
}
