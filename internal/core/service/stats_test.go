package service

import (
	"testing"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

var statsFixture = []*domain.Blog{
	{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
	{Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestComputeStats_Empty(t *testing.T) {
	stats := computeStats(nil)

	if stats.Blogs != 0 || stats.TotalLikes != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.Favorite != nil || stats.MostBlogs != nil || stats.MostLikes != nil {
		t.Fatalf("expected nil aggregates for empty collection")
	}
}

func TestComputeStats_TotalLikes(t *testing.T) {
	stats := computeStats(statsFixture)

	if stats.Blogs != 6 {
		t.Fatalf("expected 6 blogs, got %d", stats.Blogs)
	}
	if stats.TotalLikes != 36 {
		t.Fatalf("expected 36 total likes, got %d", stats.TotalLikes)
	}
}

func TestComputeStats_Favorite(t *testing.T) {
	stats := computeStats(statsFixture)

	if stats.Favorite == nil || stats.Favorite.Title != "Canonical string reduction" || stats.Favorite.Likes != 12 {
		t.Fatalf("unexpected favorite: %+v", stats.Favorite)
	}
}

func TestComputeStats_MostBlogs(t *testing.T) {
	stats := computeStats(statsFixture)

	if stats.MostBlogs == nil || stats.MostBlogs.Author != "Robert C. Martin" || stats.MostBlogs.Blogs != 3 {
		t.Fatalf("unexpected most blogs: %+v", stats.MostBlogs)
	}
}

func TestComputeStats_MostLikes(t *testing.T) {
	stats := computeStats(statsFixture)

	if stats.MostLikes == nil || stats.MostLikes.Author != "Edsger W. Dijkstra" || stats.MostLikes.Likes != 17 {
		t.Fatalf("unexpected most likes: %+v", stats.MostLikes)
	}
}

func TestComputeStats_SingleBlog(t *testing.T) {
	stats := computeStats(statsFixture[:1])

	if stats.TotalLikes != 7 {
		t.Fatalf("expected 7 likes, got %d", stats.TotalLikes)
	}
	if stats.Favorite.Title != "React patterns" {
		t.Fatalf("unexpected favorite: %+v", stats.Favorite)
	}
	if stats.MostBlogs.Author != "Michael Chan" || stats.MostBlogs.Blogs != 1 {
		t.Fatalf("unexpected most blogs: %+v", stats.MostBlogs)
	}
}
