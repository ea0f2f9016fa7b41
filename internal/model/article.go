package model

const MaxTitleLength = 255

type Article struct {
	ID      int64
	Title   string
	Content string
}
