package entity

// Paragraph is one submitted piece of writing with its review.
// Point is supplied by the caller and may be absent; UserID is an opaque
// lookup key and is not checked against existing users.
type Paragraph struct {
	ID       string   `json:"_id"`
	Content  string   `json:"content"`
	Point    *float64 `json:"point"`
	Mistakes []string `json:"mistakes"`
	Suggest  string   `json:"suggest"`
	UserID   string   `json:"userId"`
}
