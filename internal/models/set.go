// ABOUTME: Set model shared by routine templates and workout history.
// ABOUTME: One planned or performed unit of an exercise, ordered by set number.
package models

// Set is a single rep count at a given weight, ordered within its parent
// exercise by SetNumber ascending.
type Set struct {
	SetNumber int     `json:"setNumber" yaml:"setNumber"`
	Reps      int     `json:"reps" yaml:"reps"`
	Weight    float64 `json:"weight" yaml:"weight"`
}
