package domain

import (
	"time"
)

// DefaultArticleImageURL is applied when an article is created without
// an article_img_url. It matches the column default in the schema.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a story posted under a topic by a user. ID and CreatedAt
// are assigned by the store on insert. CommentCount is derived from the
// comments table on every read and is never persisted.
type Article struct {
	ID            int64     `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	ArticleImgURL string    `json:"article_img_url"`
	Votes         int       `json:"votes"`
	CreatedAt     time.Time `json:"created_at"`
	CommentCount  int       `json:"comment_count"`
}

// NewArticle assembles an article for insertion. The image URL falls
// back to DefaultArticleImageURL when empty. Field contents are not
// inspected here: empty strings are storable values, and referential
// checks (author, topic) belong to the callers and the schema.
func NewArticle(author, title, body, topic, imgURL string) *Article {
	if imgURL == "" {
		imgURL = DefaultArticleImageURL
	}

	return &Article{
		Author:        author,
		Title:         title,
		Body:          body,
		Topic:         topic,
		ArticleImgURL: imgURL,
	}
}
