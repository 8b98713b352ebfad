package seeds

import (
	"log"

	"gorm.io/gorm"

	directoryModel "tutorku_backend/internals/features/directory/students/model"
	planModel "tutorku_backend/internals/features/plans/weekly_plans/model"
	directory "tutorku_backend/internals/seeds/directory"
)

// RunAllSeeds populates the local-dev directory tables. Guarded by the
// SEED_DB flag in main; never runs in production (the production schema is
// managed by migrations, not by this process).
func RunAllSeeds(db *gorm.DB) {
	if err := db.AutoMigrate(
		&directoryModel.StudentModel{},
		&directoryModel.TeacherAssignmentModel{},
		&planModel.WeeklyPlanModel{},
		&planModel.PlanTaskModel{},
		&planModel.PlanCommentModel{},
	); err != nil {
		log.Fatalf("[SEED] migrate failed: %v", err)
	}

	directory.SeedStudentsFromJSON(db, "internals/seeds/directory/data_students.json")
	directory.SeedAssignmentsFromJSON(db, "internals/seeds/directory/data_teacher_assignments.json")
}
