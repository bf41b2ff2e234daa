package models

import "time"

// Enrollment links one student to one course with progress tracking
//
// Identity is the (CourseID, StudentID) pair; at most one enrollment may exist
// per pair. CompletedAt is set once progress first reaches 100 and never changes
// afterwards.
type Enrollment struct {
	CourseID    int        `json:"courseId"`
	StudentID   int        `json:"studentId"`
	Progress    int        `json:"progress"` // percentage, 0-100
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	EnrolledAt  time.Time  `json:"enrolledAt"`
}

// EnrolledCourse represents a course with the student's progress for dashboard listings
type EnrolledCourse struct {
	Course      Course     `json:"course"`
	Progress    int        `json:"progress"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// EnrollAction is what the enroll control should do for a given viewer
type EnrollAction string

// Enroll control actions
const (
	ActionSignIn    EnrollAction = "sign-in"  // anonymous viewer
	ActionEnroll    EnrollAction = "enroll"   // student without enrollment
	ActionContinue  EnrollAction = "continue" // enrolled student, in progress
	ActionCompleted EnrollAction = "completed"
	ActionManage    EnrollAction = "manage" // owning teacher
	ActionNone      EnrollAction = "none"   // non-owning teacher
)
