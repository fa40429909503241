// Package dto holds the request payloads bound from incoming JSON and
// form bodies. Binding tags enforce only what the stored schema itself
// demands: required fields and the review rating range.
package dto

// LoginRequest carries admin credentials. Absent fields are not a
// binding error; they simply never match a stored admin.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CourseRequest creates a course.
type CourseRequest struct {
	ClassName    string `json:"className" binding:"required"`
	TeacherName  string `json:"teacherName"`
	StudentCount int    `json:"studentCount"`
}

// CourseUpdateRequest partially updates a course.
type CourseUpdateRequest struct {
	ClassName    *string `json:"className"`
	TeacherName  *string `json:"teacherName"`
	StudentCount *int    `json:"studentCount"`
}

// AdmissionRequest creates an admission application.
type AdmissionRequest struct {
	StudentName string `json:"studentName" binding:"required"`
	ParentName  string `json:"parentName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Class       string `json:"class"`
}

// ContactRequest creates a contact message.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// EventRequest creates an event. Date accepts "2006-01-02" or RFC 3339.
type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
}

// ReviewRequest creates a review. Rating outside [1,5] is rejected at
// binding time and again by the repository.
type ReviewRequest struct {
	Name   string `json:"name" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"required"`
}

// StatusRequest narrows an update to the status field only.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
