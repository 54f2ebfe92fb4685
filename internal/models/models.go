package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	ID        int64         `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	Content   string        `json:"content" db:"content"`
	UserID    sql.NullInt64 `json:"-" db:"user_id"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}

// PostWithAuthor is a post row joined with its author's username. Username
// is empty when the owning user no longer exists.
type PostWithAuthor struct {
	Post
	Username string `json:"username" db:"username"`
}
