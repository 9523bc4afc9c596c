package entity

import "time"

type Blog struct {
	ID          int64     `db:"id" gorm:"primaryKey"`
	Title       string    `db:"title" gorm:"size:30;not null;uniqueIndex:blogs_title_key"`
	Body        string    `db:"body" gorm:"size:50"`
	Image       string    `db:"image" gorm:"size:50"`
	CreatedDate time.Time `db:"created_date" gorm:"not null;default:CURRENT_TIMESTAMP"`
	WriterID    int64     `db:"writer_id" gorm:"index"`
	CategoryID  int64     `db:"category_id" gorm:"index"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogView is a blog joined with the names of its writer and category.
// Either name is empty when the referenced row no longer exists.
type BlogView struct {
	Blog
	WriterName   string
	CategoryName string
}
