package blog

import "time"

type Post struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	AuthorID  int       `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Like marks that user LikerID currently likes post BlogID.
// Identity is the composite (BlogID, LikerID); the table carries a unique
// constraint on the pair, which is what keeps the toggle race-free.
type Like struct {
	BlogID  int `json:"blog_id" db:"blog_id"`
	LikerID int `json:"liker_id" db:"liker_id"`
}
