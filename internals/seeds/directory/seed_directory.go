package directory

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	model "tutorku_backend/internals/features/directory/students/model"
)

type StudentSeed struct {
	StudentID        uuid.UUID  `json:"student_id"`
	UserID           uuid.UUID  `json:"user_id"`
	ParentUserID     *uuid.UUID `json:"parent_user_id"`
	DisplayName      string     `json:"display_name"`
	EnrollmentStatus string     `json:"enrollment_status"`
}

type AssignmentSeed struct {
	TeacherUserID uuid.UUID `json:"teacher_user_id"`
	StudentID     uuid.UUID `json:"student_id"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Subjects      []string  `json:"subjects"`
}

// SeedStudentsFromJSON loads the local-dev student directory. Existing
// student ids are skipped so the seed is safe to re-run.
func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED] cannot read %s: %v", filePath, err)
	}
	var seeds []StudentSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("[SEED] cannot decode %s: %v", filePath, err)
	}

	var existingIDs []uuid.UUID
	if err := db.Model(&model.StudentModel{}).
		Select("student_id").
		Find(&existingIDs).Error; err != nil {
		log.Fatalf("[SEED] cannot list existing students: %v", err)
	}
	existing := make(map[uuid.UUID]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	var rows []model.StudentModel
	for _, s := range seeds {
		if existing[s.StudentID] {
			continue
		}
		rows = append(rows, model.StudentModel{
			StudentID:               s.StudentID,
			StudentUserID:           s.UserID,
			StudentParentUserID:     s.ParentUserID,
			StudentDisplayName:      s.DisplayName,
			StudentEnrollmentStatus: s.EnrollmentStatus,
		})
	}
	if len(rows) == 0 {
		log.Println("[SEED] students: nothing new")
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("[SEED] students insert failed: %v", err)
	}
	log.Printf("[SEED] students: %d inserted", len(rows))
}

// SeedAssignmentsFromJSON loads teacher→student assignments. A teacher is
// assigned to the same student at most once here; re-runs skip pairs that
// already exist.
func SeedAssignmentsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED] cannot read %s: %v", filePath, err)
	}
	var seeds []AssignmentSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("[SEED] cannot decode %s: %v", filePath, err)
	}

	var rows []model.TeacherAssignmentModel
	for _, s := range seeds {
		var count int64
		if err := db.Model(&model.TeacherAssignmentModel{}).
			Where("teacher_assignment_teacher_user_id = ?", s.TeacherUserID).
			Where("teacher_assignment_student_id = ?", s.StudentID).
			Count(&count).Error; err != nil {
			log.Fatalf("[SEED] cannot check existing assignment: %v", err)
		}
		if count > 0 {
			continue
		}
		rows = append(rows, model.TeacherAssignmentModel{
			TeacherAssignmentTeacherUserID: s.TeacherUserID,
			TeacherAssignmentStudentID:     s.StudentID,
			TeacherAssignmentRole:          s.Role,
			TeacherAssignmentStatus:        s.Status,
			TeacherAssignmentSubjects:      pq.StringArray(s.Subjects),
		})
	}
	if len(rows) == 0 {
		log.Println("[SEED] assignments: nothing new")
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("[SEED] assignments insert failed: %v", err)
	}
	log.Printf("[SEED] assignments: %d inserted", len(rows))
}
