// ABOUTME: ProfileRepo: the singleton user profile row with partial-field updates.
// ABOUTME: Create refuses a second row; Update always targets the fixed row id.
package storage

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"liftlog/internal/models"
)

// profileRowID is the fixed id of the singleton profile row.
const profileRowID = 1

// ProfileRepo provides access to the user profile.
type ProfileRepo struct {
	h *Handle
}

// NewProfileRepo creates a ProfileRepo over the given handle.
func NewProfileRepo(h *Handle) *ProfileRepo {
	return &ProfileRepo{h: h}
}

// Get returns the profile, or nil if it has never been created.
func (r *ProfileRepo) Get() (*models.UserProfile, error) {
	db, err := r.h.Acquire()
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err = db.QueryRow(
		"SELECT id, name, age, gender FROM user_profile WHERE id = ?", profileRowID,
	).Scan(&profile.ID, &profile.Name, &profile.Age, &profile.Gender)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErrorf("get profile", err)
	}
	return &profile, nil
}

// Create inserts the singleton profile row and returns its id. Creating a
// second profile is an InvariantViolation.
func (r *ProfileRepo) Create(name string, age int, gender string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, validationErrorf("profile name must not be empty")
	}

	existing, err := r.Get()
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, &InvariantViolation{Msg: "user profile already exists"}
	}

	db, err := r.h.Acquire()
	if err != nil {
		return 0, err
	}

	_, err = db.Exec(
		"INSERT INTO user_profile (id, name, age, gender) VALUES (?, ?, ?, ?)",
		profileRowID, name, age, gender,
	)
	if err != nil {
		return 0, storageErrorf("create profile", err)
	}
	return profileRowID, nil
}

// Update changes only the fields named in the update. An update naming no
// fields is a ValidationError.
func (r *ProfileRepo) Update(update models.ProfileUpdate) error {
	if update.IsEmpty() {
		return validationErrorf("no profile fields provided for update")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return validationErrorf("profile name must not be empty")
	}

	db, err := r.h.Acquire()
	if err != nil {
		return err
	}

	builder := sq.Update("user_profile").Where(sq.Eq{"id": profileRowID})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Age != nil {
		builder = builder.Set("age", *update.Age)
	}
	if update.Gender != nil {
		builder = builder.Set("gender", *update.Gender)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return storageErrorf("build update profile", err)
	}

	res, err := db.Exec(query, args...)
	if err != nil {
		return storageErrorf("update profile", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErrorf("update profile", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "profile", ID: profileRowID}
	}
	return nil
}
