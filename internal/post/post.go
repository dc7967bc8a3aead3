package post

import "time"

type Post struct {
	ID       uint64  `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"type:text" json:"title"`
	Text     string  `gorm:"type:text" json:"text"`
	ImageURL *string `gorm:"size:512" json:"image_url"`
	// ImageKey is the object key in the attachment bucket. Stored next to the
	// URL so cleanup never has to parse one; rows written before the column
	// existed carry only the URL.
	ImageKey          *string    `gorm:"size:255" json:"image_key,omitempty"`
	IncludeTimestamps bool       `gorm:"default:true" json:"include_timestamps"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt         *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
