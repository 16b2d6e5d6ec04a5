package core

type (
	// BlogPost is a published article. Posts are kept newest-first and are
	// only ever replaced as a whole record, never partially edited.
	BlogPost struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Author   string `json:"author"`
		Image    string `json:"image"`
		Excerpt  string `json:"excerpt"`
		Content  string `json:"content"`
		Date     string `json:"date"`
		Category string `json:"category"`
		ReadTime int    `json:"readTime"` // minutes
	}
)
