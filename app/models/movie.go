package models

// Validate checks if the director meets all validation requirements
func (d *Director) Validate() error {
	return validate.Struct(d)
}

// Validate checks if the genre meets all validation requirements
func (g *Genre) Validate() error {
	return validate.Struct(g)
}

// Validate checks if the movie meets all validation requirements
func (m *Movie) Validate() error {
	return validate.Struct(m)
}

// HasDirector reports whether the movie references the given director.
func (m *Movie) HasDirector(id int) bool {
	for _, d := range m.DirectorIDs {
		if d == id {
			return true
		}
	}
	return false
}

// HasGenre reports whether the movie references the given genre.
func (m *Movie) HasGenre(id int) bool {
	for _, g := range m.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}
