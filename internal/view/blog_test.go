package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/modernblog/internal/model"
)

func blogPosts() []model.Post {
	return []model.Post{
		{
			ID:       "1",
			Title:    "The Future of Web Design: AI-Powered Interfaces",
			Content:  "AI is transforming the way we design and interact with websites.",
			Tags:     []string{"AI", "Design Trends", "UX Design"},
			Category: "Web Design",
		},
		{
			ID:       "2",
			Title:    "Building Sustainable Digital Products",
			Content:  "Sustainability is no longer optional.",
			Tags:     []string{"Sustainability", "Engineering"},
			Category: "Technology",
		},
		{
			ID:       "3",
			Title:    "Minimalism in Modern E-Commerce",
			Content:  "Calm, focused shopping experiences convert.",
			Tags:     []string{"Design Trends", "E-Commerce"},
			Category: "Web Design",
		},
	}
}

func TestFilterPosts_EmptyFilter_MatchesAll(t *testing.T) {
	posts := FilterPosts(blogPosts(), PostFilter{})

	assert.Len(t, posts, 3)
}

func TestFilterPosts_QueryMatchesTitleCaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"exact case", "AI"},
		{"lower case", "ai"},
		{"mixed case", "Ai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := FilterPosts(blogPosts(), PostFilter{Query: tt.query})

			// "AI-Powered" in the title and "AI is" in the content both
			// contain the substring; "Sustainable" also contains "ai".
			require.NotEmpty(t, posts)
			assert.Equal(t, "1", posts[0].ID)
		})
	}
}

func TestFilterPosts_QueryMatchesContent(t *testing.T) {
	posts := FilterPosts(blogPosts(), PostFilter{Query: "shopping experiences"})

	require.Len(t, posts, 1)
	assert.Equal(t, "3", posts[0].ID)
}

func TestFilterPosts_QueryNoMatch(t *testing.T) {
	posts := FilterPosts(blogPosts(), PostFilter{Query: "quantum"})

	assert.Empty(t, posts)
}

func TestFilterPosts_CategoryFilter(t *testing.T) {
	posts := FilterPosts(blogPosts(), PostFilter{Category: "Web Design"})

	require.Len(t, posts, 2)
	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, "3", posts[1].ID)
}

func TestFilterPosts_EveryTagMustMatch(t *testing.T) {
	one := FilterPosts(blogPosts(), PostFilter{Tags: []string{"Design Trends"}})
	assert.Len(t, one, 2)

	both := FilterPosts(blogPosts(), PostFilter{Tags: []string{"Design Trends", "AI"}})
	require.Len(t, both, 1)
	assert.Equal(t, "1", both[0].ID)
}

func TestFilterPosts_CombinesAllCriteria(t *testing.T) {
	posts := FilterPosts(blogPosts(), PostFilter{
		Query:    "commerce",
		Category: "Web Design",
		Tags:     []string{"E-Commerce"},
	})

	// Post 3 is Web Design, tagged E-Commerce, and "commerce" appears in
	// its title.
	require.Len(t, posts, 1)
	assert.Equal(t, "3", posts[0].ID)
}

func TestPostCategories_DistinctFirstSeenOrder(t *testing.T) {
	categories := PostCategories(blogPosts())

	assert.Equal(t, []string{"Web Design", "Technology"}, categories)
}

func TestPostTags_DistinctAcrossPosts(t *testing.T) {
	tags := PostTags(blogPosts())

	assert.Equal(t, []string{"AI", "Design Trends", "UX Design", "Sustainability", "Engineering", "E-Commerce"}, tags)
}
