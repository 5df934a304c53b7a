package models

import "time"

// User is a site account. PasswordHash holds a bcrypt hash, never the raw
// password.
type User struct {
	ID           int       `validate:"gte=0"`
	Username     string    `validate:"required,max=150"`
	PasswordHash string    `validate:"required"`
	Joined       time.Time `validate:"required"`
}

// Entry is a dictionary word with its definition.
type Entry struct {
	ID         int    `validate:"gte=0"`
	Word       string `validate:"required,max=100"`
	Definition string `validate:"required,max=500"`
}

// Post is a guestbook message. Author mirrors the posting user's name at the
// time of writing; UserID links back to the account.
type Post struct {
	ID      int       `validate:"gte=0"`
	UserID  int       `validate:"required,gt=0"`
	Author  string    `validate:"required,max=150"`
	Comment string    `validate:"required,max=500"`
	Created time.Time `validate:"required"`
}

// Image is an uploaded gallery picture. File is the stored path relative to
// the media root.
type Image struct {
	ID          int       `validate:"gte=0"`
	File        string    `validate:"required"`
	Description string    `validate:"max=500"`
	Published   time.Time `validate:"required"`
	Modified    time.Time `validate:"required"`
}

// Topic is a feedback category.
type Topic struct {
	ID   int    `validate:"gte=0"`
	Name string `validate:"required,max=100"`
}

// Feedback rates a topic on a 1-100 scale with optional free text. A zero
// rating is out of range rather than missing, so the bound carries the error.
type Feedback struct {
	ID      int       `validate:"gte=0"`
	TopicID int       `validate:"required,gt=0"`
	Rating  int       `validate:"gte=1,lte=100"`
	Good    string    `validate:"max=1000"`
	Bad     string    `validate:"max=1000"`
	Created time.Time `validate:"required"`
}

// Director of a movie.
type Director struct {
	ID   int    `validate:"gte=0"`
	Name string `validate:"required,max=150"`
}

// Genre of a movie.
type Genre struct {
	ID   int    `validate:"gte=0"`
	Name string `validate:"required,max=100"`
}

// Movie is a film with its director and genre links. The ID slices are what
// gets persisted; Directors and Genres are resolved on read.
type Movie struct {
	ID          int       `validate:"gte=0"`
	Title       string    `validate:"required,max=200"`
	PublishDate time.Time `validate:"required"`
	Description string    `validate:"max=1000"`
	DirectorIDs []int     `validate:"dive,gt=0"`
	GenreIDs    []int     `validate:"dive,gt=0"`

	Directors []*Director `json:"-" validate:"-"`
	Genres    []*Genre    `json:"-" validate:"-"`
}

// Message is a note left on the hello page.
type Message struct {
	ID   int       `validate:"gte=0"`
	Text string    `validate:"required,max=250"`
	Date time.Time `validate:"required"`
}
