package models

import "time"

// Validate checks if the image meets all validation requirements
func (i *Image) Validate() error {
	return validate.Struct(i)
}

// BeforeCreate stamps the publication and modification times.
func (i *Image) BeforeCreate() {
	now := time.Now()
	if i.Published.IsZero() {
		i.Published = now
	}
	i.Modified = now
}
