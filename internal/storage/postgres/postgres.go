package postgres

import (
	"activityBoard/internal/config"
	"activityBoard/internal/models"
	"activityBoard/internal/storage"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) GetActivities() (models.Activities, error) {
	const op = "storage.postgres.GetActivities"

	query := `
		SELECT a.id, a.name, a.description, a.schedule, a.max_participants, p.email
		FROM activities a
		LEFT JOIN participants p ON p.activity_id = a.id
		ORDER BY a.id, p.id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get activities: %w", op, err)
	}
	defer rows.Close()

	activities := models.Activities{}
	lastID := -1

	for rows.Next() {
		var (
			id    int
			a     models.Activity
			email sql.NullString
		)

		err = rows.Scan(&id, &a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &email)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan activity: %w", op, err)
		}

		if id != lastID {
			a.Participants = []string{}
			activities = append(activities, a)
			lastID = id
		}

		if email.Valid {
			cur := &activities[len(activities)-1]
			cur.Participants = append(cur.Participants, email.String)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating activities: %w", op, err)
	}

	return activities, nil
}

func (s *Storage) SignupParticipant(activityName, email string) error {
	const op = "storage.postgres.SignupParticipant"

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	activityID, maxParticipants, err := lockActivity(tx, activityName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var signedUp bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM participants
			WHERE activity_id = $1 AND email = $2
		)`

	err = tx.QueryRow(checkQuery, activityID, email).Scan(&signedUp)
	if err != nil {
		return fmt.Errorf("%s: failed to check participant: %w", op, err)
	}

	if signedUp {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadySignedUp)
	}

	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM participants
		WHERE activity_id = $1`

	err = tx.QueryRow(countQuery, activityID).Scan(&count)
	if err != nil {
		return fmt.Errorf("%s: failed to count participants: %w", op, err)
	}

	if count >= maxParticipants {
		return fmt.Errorf("%s: %w", op, storage.ErrActivityFull)
	}

	insertQuery := `
		INSERT INTO participants (activity_id, email, created_at)
		VALUES ($1, $2, NOW())`

	_, err = tx.Exec(insertQuery, activityID, email)
	if err != nil {
		return fmt.Errorf("%s: failed to add participant: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func (s *Storage) UnregisterParticipant(activityName, email string) error {
	const op = "storage.postgres.UnregisterParticipant"

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	activityID, _, err := lockActivity(tx, activityName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	deleteQuery := `
		DELETE FROM participants
		WHERE activity_id = $1 AND email = $2`

	result, err := tx.Exec(deleteQuery, activityID, email)
	if err != nil {
		return fmt.Errorf("%s: failed to remove participant: %w", op, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to count removed rows: %w", op, err)
	}

	if removed == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotSignedUp)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func lockActivity(tx *sql.Tx, name string) (int, int, error) {
	query := `
		SELECT id, max_participants
		FROM activities
		WHERE name = $1
		FOR UPDATE`

	var id, maxParticipants int

	err := tx.QueryRow(query, name).Scan(&id, &maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, storage.ErrActivityNotFound
		}
		return 0, 0, fmt.Errorf("failed to get activity: %w", err)
	}

	return id, maxParticipants, nil
}
