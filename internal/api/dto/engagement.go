package dto

import "time"

// LikeStateDTO is returned by toggle and check endpoints.
type LikeStateDTO struct {
	Liked bool `json:"liked"`
}

// CountDTO wraps a single counter value.
type CountDTO struct {
	Count int64 `json:"count"`
}

// RatingCreateDTO creates or overwrites the caller's rating.
type RatingCreateDTO struct {
	Rating int     `json:"rating" binding:"required,min=1,max=5"`
	Review *string `json:"review" binding:"omitempty,max=2000"`
}

// RatingDTO is the rating projection.
type RatingDTO struct {
	ID        uint64    `json:"id"`
	ModelID   uint64    `json:"modelId"`
	UserID    uint64    `json:"userId"`
	Username  string    `json:"username,omitempty"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentCreateDTO creates a comment or a reply.
type CommentCreateDTO struct {
	Content         string  `json:"content" binding:"required,min=1,max=2000"`
	ParentCommentID *uint64 `json:"parentCommentId"`
}

// CommentUpdateDTO edits an existing comment.
type CommentUpdateDTO struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentDTO is the comment projection.
type CommentDTO struct {
	ID              uint64    `json:"id"`
	ModelID         uint64    `json:"modelId"`
	UserID          uint64    `json:"userId"`
	Username        string    `json:"username,omitempty"`
	Content         string    `json:"content"`
	ParentCommentID *uint64   `json:"parentCommentId"`
	UpvoteCount     int       `json:"upvoteCount"`
	DownvoteCount   int       `json:"downvoteCount"`
	IsEdited        bool      `json:"isEdited"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EngagementStateDTO aggregates the counters shown on a model detail page.
type EngagementStateDTO struct {
	LikeCount    int64 `json:"likeCount"`
	CommentCount int64 `json:"commentCount"`
	RatingCount  int64 `json:"ratingCount"`
	ViewCount    int64 `json:"viewCount"`
	IsLiked      bool  `json:"isLiked"`
}
