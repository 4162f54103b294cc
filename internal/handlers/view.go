package handlers

import (
	"strings"

	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

// blobURL turns a stored blob name into a public URL under /uploads.
func blobURL(baseURL string, name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	u := strings.TrimRight(baseURL, "/") + "/uploads/" + strings.TrimLeft(*name, "/")
	return &u
}

// Listings handed out by the cache are shared, so the view helpers below
// copy values and never write through the input.

func userView(baseURL string, u *models.User) *models.User {
	if u == nil {
		return nil
	}
	out := *u
	out.UserImage = blobURL(baseURL, u.UserImage)
	return &out
}

func usersView(baseURL string, users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i := range users {
		out[i] = *userView(baseURL, &users[i])
	}
	return out
}

func categoryView(baseURL string, c *models.Category) *models.Category {
	if c == nil {
		return nil
	}
	out := *c
	out.Image = blobURL(baseURL, c.Image)
	return &out
}

func categoriesView(baseURL string, cats []models.Category) []models.Category {
	out := make([]models.Category, len(cats))
	for i := range cats {
		out[i] = *categoryView(baseURL, &cats[i])
	}
	return out
}

func mediaView(baseURL string, m *models.Media) *models.Media {
	if m == nil {
		return nil
	}
	out := *m
	out.Banner = blobURL(baseURL, m.Banner)
	out.Audio = blobURL(baseURL, m.Audio)
	return &out
}

func mediaListView(baseURL string, items []models.Media) []models.Media {
	out := make([]models.Media, len(items))
	for i := range items {
		out[i] = *mediaView(baseURL, &items[i])
	}
	return out
}
