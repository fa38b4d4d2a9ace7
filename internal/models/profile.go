// ABOUTME: UserProfile model: the single-row profile entity.
// ABOUTME: ProfileUpdate carries an optional subset of fields for partial updates.
package models

// UserProfile is the singleton profile row. Exactly one row ever exists,
// always at the fixed id.
type UserProfile struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Age    int    `json:"age" yaml:"age"`
	Gender string `json:"gender" yaml:"gender"`
}

// ProfileUpdate names the fields to change; nil fields are left untouched.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty" yaml:"name,omitempty"`
	Age    *int    `json:"age,omitempty" yaml:"age,omitempty"`
	Gender *string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// IsEmpty reports whether the update names no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Gender == nil
}
