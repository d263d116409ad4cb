package entities

type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	LikeCount int       `json:"likeCount"`
	Farmer    UserRef   `json:"farmer"`
	Comments  []Comment `json:"comments"`
	CreatedAt string    `json:"createdAt"`
}

type Comment struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	User      UserRef `json:"user"`
	CreatedAt string  `json:"createdAt"`
}
