package models

import "time"

// Validate checks if the topic meets all validation requirements
func (t *Topic) Validate() error {
	return validate.Struct(t)
}

// Validate checks if the feedback meets all validation requirements
func (f *Feedback) Validate() error {
	return validate.Struct(f)
}

// BeforeCreate sets up any necessary fields before creation
func (f *Feedback) BeforeCreate() {
	if f.Created.IsZero() {
		f.Created = time.Now()
	}
}
