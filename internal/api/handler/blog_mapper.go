package handler

import (
	"github.com/bloglist/bloglist-api/internal/core/domain"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBlogRequest) ports.CreateBlogInput {
	return ports.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
}

func toUpdateInput(req updateBlogRequest) ports.UpdateBlogInput {
	return ports.UpdateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
}

// --- Service result → HTTP response ---

func toBlogResponse(b *domain.Blog) blogResponse {
	return blogResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		User:   b.UserID,
	}
}

func toBlogDetailResponse(d ports.BlogDetail) blogDetailResponse {
	resp := blogDetailResponse{
		ID:     d.ID,
		Title:  d.Title,
		Author: d.Author,
		URL:    d.URL,
		Likes:  d.Likes,
	}
	if d.User != nil {
		resp.User = &ownerResponse{
			ID:       d.User.ID,
			Username: d.User.Username,
			Name:     d.User.Name,
		}
	}
	return resp
}

func toStatsResponse(s *ports.BlogStats) blogStatsResponse {
	resp := blogStatsResponse{
		Blogs:      s.Blogs,
		TotalLikes: s.TotalLikes,
	}
	if s.Favorite != nil {
		resp.Favorite = &favoriteBlogResponse{
			Title:  s.Favorite.Title,
			Author: s.Favorite.Author,
			Likes:  s.Favorite.Likes,
		}
	}
	if s.MostBlogs != nil {
		resp.MostBlogs = &authorBlogsResponse{Author: s.MostBlogs.Author, Blogs: s.MostBlogs.Blogs}
	}
	if s.MostLikes != nil {
		resp.MostLikes = &authorLikesResponse{Author: s.MostLikes.Author, Likes: s.MostLikes.Likes}
	}
	return resp
}
