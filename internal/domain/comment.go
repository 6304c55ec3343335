package domain

import (
	"errors"
	"time"
)

// ErrInvalidCommentArticle indicates a comment aimed at a
// non-positive article id.
var ErrInvalidCommentArticle = errors.New("comment article ID must be positive")

// Comment is a reply posted against an article. ID and CreatedAt are
// assigned by the store on insert; Votes starts at zero.
type Comment struct {
	ID        int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment assembles a comment for insertion against the given
// article. Author and body are stored as given, empty strings
// included; author existence is the caller's concern. The article id
// must be positive.
func NewComment(articleID int64, author, body string) (*Comment, error) {
	if articleID <= 0 {
		return nil, ErrInvalidCommentArticle
	}

	return &Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
	}, nil
}
