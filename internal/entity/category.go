package entity

type Category struct {
	ID       int64  `db:"id" gorm:"primaryKey"`
	Name     string `db:"name" gorm:"size:20"`
	WriterID int64  `db:"writer_id" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}
