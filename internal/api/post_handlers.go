package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/example/modernblog/internal/model"
	"github.com/example/modernblog/internal/state"
	"github.com/example/modernblog/internal/view"
)

// ListPosts returns the blog page: posts filtered by the shared search
// query plus the category/tag selections, and the sidebar derivations.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	s := storeFrom(r).GetState()

	filter := view.PostFilter{
		Query:    s.SearchQuery,
		Category: r.URL.Query().Get("category"),
		Tags:     r.URL.Query()["tag"],
	}
	posts := view.FilterPosts(s.Posts, filter)

	respondJSON(w, http.StatusOK, map[string]any{
		"posts":      posts,
		"categories": view.PostCategories(s.Posts),
		"tags":       view.PostTags(s.Posts),
		"total":      len(posts),
	})
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s := storeFrom(r).GetState()

	for _, post := range s.Posts {
		if post.ID == id {
			respondJSON(w, http.StatusOK, post)
			return
		}
	}
	http.Error(w, "Post not found", http.StatusNotFound)
}

type createPostRequest struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// CreatePost mints a new post for the current user. Same shape as the
// admin form: fresh ID, current timestamp, and an author snapshot frozen
// from the user record at creation time.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	store := storeFrom(r)
	user := store.GetState().User
	if user == nil || !user.IsAdmin {
		http.Error(w, "Admin account required", http.StatusForbidden)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post := model.Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Tags:      req.Tags,
		Category:  req.Category,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Author:    authorSnapshot(*user),
	}

	store.Dispatch(state.AddPost{Post: post})
	respondJSON(w, http.StatusCreated, post)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var post model.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	post.ID = chi.URLParam(r, "id")

	storeFrom(r).Dispatch(state.UpdatePost{Post: post})
	respondJSON(w, http.StatusOK, map[string]string{"message": "Post updated"})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	storeFrom(r).Dispatch(state.DeletePost{ID: chi.URLParam(r, "id")})
	respondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// authorSnapshot freezes the writing user into the by-value author record
// embedded in the post. Later profile changes never touch it.
func authorSnapshot(u model.User) model.Author {
	return model.Author{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: "https://ui-avatars.com/api/?name=" + url.QueryEscape(u.Name),
		Bio:    "Content Creator",
		Social: map[string]string{},
	}
}
