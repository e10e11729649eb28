package service

import (
	"github.com/bloglist/bloglist-api/internal/core/domain"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

// computeStats aggregates a blog collection. Ties keep the earliest entry in
// collection order.
func computeStats(blogs []*domain.Blog) *ports.BlogStats {
	stats := &ports.BlogStats{Blogs: len(blogs)}
	if len(blogs) == 0 {
		return stats
	}

	for _, b := range blogs {
		stats.TotalLikes += b.Likes
	}
	stats.Favorite = favoriteBlog(blogs)
	stats.MostBlogs = mostBlogs(blogs)
	stats.MostLikes = mostLikes(blogs)
	return stats
}

func favoriteBlog(blogs []*domain.Blog) *ports.FavoriteBlog {
	favorite := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return &ports.FavoriteBlog{
		Title:  favorite.Title,
		Author: favorite.Author,
		Likes:  favorite.Likes,
	}
}

func mostBlogs(blogs []*domain.Blog) *ports.AuthorBlogs {
	counts := make(map[string]int)
	top := &ports.AuthorBlogs{}
	for _, b := range blogs {
		counts[b.Author]++
		if counts[b.Author] > top.Blogs {
			top.Author = b.Author
			top.Blogs = counts[b.Author]
		}
	}
	return top
}

func mostLikes(blogs []*domain.Blog) *ports.AuthorLikes {
	likes := make(map[string]int)
	top := &ports.AuthorLikes{Likes: -1}
	for _, b := range blogs {
		likes[b.Author] += b.Likes
		if likes[b.Author] > top.Likes {
			top.Author = b.Author
			top.Likes = likes[b.Author]
		}
	}
	return top
}
