package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

const blogsCollection = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

type mongoBlog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author,omitempty"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
	UserID primitive.ObjectID `bson:"user"`
}

func (r *BlogRepository) Insert(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	uid, err := primitive.ObjectIDFromHex(blog.UserID)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBlog{
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
		UserID: uid,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toDomainBlog(doc), nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBlog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return toDomainBlog(mb), nil
}

// FindByIDs returns the blogs matching the given ids; ids that do not resolve
// are skipped.
func (r *BlogRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Blog, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]*domain.Blog, error) {
	return r.find(ctx, bson.M{})
}

func (r *BlogRepository) find(ctx context.Context, filter bson.M) ([]*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	var docs []mongoBlog
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	blogs := make([]*domain.Blog, 0, len(docs))
	for _, mb := range docs {
		blogs = append(blogs, toDomainBlog(mb))
	}
	return blogs, nil
}

// Replace overwrites the four mutable fields and returns the updated document.
func (r *BlogRepository) Replace(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":  blog.Title,
		"author": blog.Author,
		"url":    blog.URL,
		"likes":  blog.Likes,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mb mongoBlog
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return toDomainBlog(mb), nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func toDomainBlog(mb mongoBlog) *domain.Blog {
	return &domain.Blog{
		ID:     mb.ID.Hex(),
		Title:  mb.Title,
		Author: mb.Author,
		URL:    mb.URL,
		Likes:  mb.Likes,
		UserID: mb.UserID.Hex(),
	}
}
