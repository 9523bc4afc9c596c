package entity

type Comment struct {
	ID       int64  `db:"id" gorm:"primaryKey"`
	Text     string `db:"comment" gorm:"column:comment;size:200"`
	WriterID int64  `db:"writer_id" gorm:"index"`
	BlogID   int64  `db:"blog_id" gorm:"index"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentView struct {
	Comment
	WriterName string
}
