package models

// Validate checks if the entry meets all validation requirements
func (e *Entry) Validate() error {
	return validate.Struct(e)
}
