package models

import "time"

// Validate checks if the message meets all validation requirements
func (m *Message) Validate() error {
	return validate.Struct(m)
}

// BeforeCreate sets up any necessary fields before creation
func (m *Message) BeforeCreate() {
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
}
