package model

import "fmt"

// Quote is an inspirational quote and its author
type Quote struct {
	Text   string
	Author string
}

// Display returns the single line shown over the photo
func (q Quote) Display() string {
	return fmt.Sprintf("%s - %s", q.Text, q.Author)
}

// Translation is a successful machine translation of a quote
type Translation struct {
	Source Quote
	Text   string
}
