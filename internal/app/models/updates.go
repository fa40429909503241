package models

// Partial update descriptors. A nil field means "leave the stored value
// alone"; only non-nil fields are written. Image references are set only
// when a new file accompanied the request.

// HeroSlideUpdate describes a partial hero slide update.
type HeroSlideUpdate struct {
	Title        *string
	Subtitle     *string
	DisplayOrder *int
	ImageURL     *string
}

// FacultyUpdate describes a partial faculty update.
type FacultyUpdate struct {
	Name       *string
	Department *string
	Position   *string
	Email      *string
	Phone      *string
	ImageURL   *string
}

// CourseUpdate describes a partial course update.
type CourseUpdate struct {
	ClassName    *string
	TeacherName  *string
	StudentCount *int
}

// NoticeUpdate describes a partial notice update.
type NoticeUpdate struct {
	Title    *string
	Content  *string
	Priority *string
	IsActive *bool
	ImageURL *string
}
