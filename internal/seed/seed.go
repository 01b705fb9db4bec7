package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/models"
	appRepos "github.com/C4bbage64/Student-Info-Manager-Application/internal/app/repositories"
	"github.com/C4bbage64/Student-Info-Manager-Application/internal/pkg/apperrors"
)

// CreateDefaultData inserts a couple of demo students when the table is
// empty. Only used in development, gated by the seed.demo config flag.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)

	existing, err := studentRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing students before seeding")
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Students already present, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo students...")

	demo := []*appModels.Student{
		{StudentID: "STU001", Name: "Alice Johnson", Age: 20, Course: "Computer Science", Email: "alice@example.com", EnrollmentStatus: appModels.StatusEnrolled},
		{StudentID: "STU002", Name: "Bob Smith", Age: 22, Course: "Mathematics", Email: "bob@example.com", EnrollmentStatus: appModels.StatusEnrolled},
		{StudentID: "STU003", Name: "Carol White", Age: 21, Course: "Physics", Email: "", EnrollmentStatus: appModels.StatusEnrolled},
	}

	var finalErr error
	for _, student := range demo {
		err := studentRepo.Create(ctx, student)
		if err != nil && !errors.Is(err, apperrors.ErrDuplicateKey) {
			lgr.Error().Err(err).Str("studentId", student.StudentID).Msg("Error seeding demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
