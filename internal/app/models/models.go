// Package models defines the persisted entities of the school site.
// Field names on the wire (json tags) match the public API contract,
// bson tags match the stored documents.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a site administrator account.
// Passwords are stored and compared in plaintext. This mirrors the
// deployed behavior and is flagged at startup; changing it would break
// every existing credential.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"password"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GalleryImage is a single uploaded gallery photo.
type GalleryImage struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	ImageURL   string              `bson:"imageUrl" json:"imageUrl"`
	Category   string              `bson:"category" json:"category"`
	UploadedBy *primitive.ObjectID `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

// DefaultGalleryCategory is applied when an upload carries no category.
const DefaultGalleryCategory = "All"

// HeroSlide is a homepage carousel entry.
type HeroSlide struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle     string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	DisplayOrder int                `bson:"displayOrder,omitempty" json:"displayOrder,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Faculty is a staff member profile.
type Faculty struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Department string             `bson:"department,omitempty" json:"department,omitempty"`
	Position   string             `bson:"position,omitempty" json:"position,omitempty"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Course is a class offering.
type Course struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClassName    string             `bson:"className" json:"className"`
	TeacherName  string             `bson:"teacherName,omitempty" json:"teacherName,omitempty"`
	StudentCount int                `bson:"studentCount" json:"studentCount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// Admission is an enrollment application.
type Admission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	StudentName string             `bson:"studentName" json:"studentName"`
	ParentName  string             `bson:"parentName,omitempty" json:"parentName,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Class       string             `bson:"class,omitempty" json:"class,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// DefaultAdmissionStatus is the status of a freshly submitted admission.
const DefaultAdmissionStatus = "Pending"

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// DefaultContactStatus is the status of a freshly submitted contact message.
const DefaultContactStatus = "New"

// Notice is an announcement. IsActive is a visibility flag, not a delete.
type Notice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Priority  string             `bson:"priority" json:"priority"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// DefaultNoticePriority is applied when a notice carries no priority.
const DefaultNoticePriority = "Normal"

// Event is a calendar entry, listed in ascending date order.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Review is a visitor testimonial. Only approved reviews are public.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Rating     int                `bson:"rating" json:"rating"`
	Review     string             `bson:"review" json:"review"`
	IsApproved bool               `bson:"isApproved" json:"isApproved"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
