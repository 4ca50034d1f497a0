package items

// Item is a row of user-owned content. Items are created via the write
// endpoint and never updated or deleted afterwards.
type Item struct {
	ID      int64
	Title   string
	Content string
	UserID  int64
}
