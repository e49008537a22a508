package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/rosnMagar/RateMyClass/internal/app/models"
	appRepos "github.com/rosnMagar/RateMyClass/internal/app/repositories"
	"github.com/rosnMagar/RateMyClass/internal/config"
	pkgAuth "github.com/rosnMagar/RateMyClass/internal/pkg/auth"
)

// seedCourse describes one starter course
type seedCourse struct {
	name      string
	number    string
	major     string
	dialogues string // empty means no requirement
	mode      appModels.DeliveryMode
}

// starterCourses is a small selection of courses created for the default
// school so the catalog is not empty on first run.
var starterCourses = []seedCourse{
	{"Introduction to Computer Science", "CS 170", "Computer Science", appModels.DialoguesSTEM, appModels.DeliveryInPerson},
	{"Data Structures", "CS 180", "Computer Science", "", appModels.DeliveryInPerson},
	{"Algorithms", "CS 300", "Computer Science", "", appModels.DeliveryInPerson},
	{"Web Development", "CS 250", "Computer Science", "", appModels.DeliveryHybrid},
	{"Calculus I", "MATH 198", "Mathematics", appModels.DialoguesSTEM, appModels.DeliveryInPerson},
	{"Linear Algebra", "MATH 280", "Mathematics", "", appModels.DeliveryInPerson},
	{"Introduction to Statistics", "STAT 200", "Statistics", appModels.DialoguesSTEM, appModels.DeliveryOnline},
	{"General Biology I", "BIOL 100", "Biology", appModels.DialoguesSTEM, appModels.DeliveryInPerson},
	{"General Chemistry I", "CHEM 131", "Chemistry", appModels.DialoguesSTEM, appModels.DeliveryInPerson},
	{"Introduction to Psychology", "PSYC 166", "Psychology", appModels.DialoguesSocialScience, appModels.DeliveryInPerson},
	{"Principles of Microeconomics", "ECON 200", "Economics", appModels.DialoguesSocialScience, appModels.DeliveryInPerson},
	{"American Government", "POL 100", "Political Science", appModels.DialoguesSocialScience, appModels.DeliveryInPerson},
	{"World Literature", "ENGL 200", "English", appModels.DialoguesArtsHumanities, appModels.DeliveryInPerson},
	{"Shakespeare", "ENGL 310", "English", appModels.DialoguesArtsHumanities, appModels.DeliveryInPerson},
	{"Introduction to Philosophy", "PHIL 100", "Philosophy", appModels.DialoguesArtsHumanities, appModels.DeliveryInPerson},
	{"Music Theory I", "MUS 100", "Music", appModels.DialoguesArtsHumanities, appModels.DeliveryInPerson},
	{"Digital Marketing", "MKTG 310", "Business", "", appModels.DeliveryOnline},
	{"Public Speaking", "COMM 100", "Communication", "", appModels.DeliveryInPerson},
}

const defaultSchoolName = "Truman State University"

// CreateDefaultData seeds the default school, its starter courses and the
// admin account if they don't exist yet. Partial failures are collected
// and returned together so startup can decide whether to proceed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	schoolRepo := appRepos.NewSchoolRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default school and courses --- //
	school, err := schoolRepo.GetOrCreateByName(ctx, defaultSchoolName)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default school")
		finalErr = errors.Join(finalErr, err)
	} else {
		if err := seedCourses(ctx, courseRepo, school, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default admin user --- //
	if err := seedAdmin(ctx, userRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func seedCourses(ctx context.Context, courseRepo *appRepos.CourseRepository, school *appModels.School, lgr zerolog.Logger) error {
	existing, err := courseRepo.GetBySchoolID(ctx, school.ID)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing existing courses for seed")
		return err
	}

	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[c.Number] = true
	}

	var finalErr error
	created := 0
	for _, sc := range starterCourses {
		if known[sc.number] {
			continue
		}

		course := &appModels.Course{
			Name:         sc.name,
			Number:       sc.number,
			Major:        sc.major,
			SchoolID:     school.ID,
			DeliveryMode: string(sc.mode),
		}
		if sc.dialogues != "" {
			dialogues := sc.dialogues
			course.DialoguesRequirement = &dialogues
		}

		if err := courseRepo.Create(ctx, nil, course); err != nil {
			lgr.Error().Err(err).Str("courseNumber", sc.number).Msg("Error creating starter course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	if created > 0 {
		lgr.Info().Int("count", created).Str("school", school.Name).Msg("Starter courses created")
	}
	return finalErr
}

func seedAdmin(ctx context.Context, userRepo *appRepos.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin password not configured, skipping admin account creation")
		return nil
	}

	_, err := userRepo.GetByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, appRepos.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}

	hashedPassword, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username:     cfg.Admin.Username,
		PasswordHash: hashedPassword,
		Role:         appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, appRepos.ErrUsernameAlreadyExists) {
			lgr.Info().Msg("Admin user already exists, skipping creation")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}
