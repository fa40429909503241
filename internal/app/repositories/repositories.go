// Package repositories implements the per-entity persistence contracts
// over the document store. Each repository owns one collection; the
// store's per-document atomicity is the only consistency relied upon.
package repositories

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// Repositories bundles every entity repository for dependency wiring.
type Repositories struct {
	Admins     *AdminRepository
	Gallery    *GalleryRepository
	HeroSlides *HeroSlideRepository
	Faculty    *FacultyRepository
	Courses    *CourseRepository
	Admissions *AdmissionRepository
	Contacts   *ContactRepository
	Notices    *NoticeRepository
	Events     *EventRepository
	Reviews    *ReviewRepository
}

// NewRepositories creates all repositories over the given database handle.
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		Admins:     NewAdminRepository(database),
		Gallery:    NewGalleryRepository(database),
		HeroSlides: NewHeroSlideRepository(database),
		Faculty:    NewFacultyRepository(database),
		Courses:    NewCourseRepository(database),
		Admissions: NewAdmissionRepository(database),
		Contacts:   NewContactRepository(database),
		Events:     NewEventRepository(database),
		Notices:    NewNoticeRepository(database),
		Reviews:    NewReviewRepository(database),
	}
}

// parseObjectID converts a path id into an ObjectID. A malformed id can
// never match a stored document, so it is reported as not found.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewNotFoundError("no record with id " + id)
	}
	return oid, nil
}
