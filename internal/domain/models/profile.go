// internal/domain/models/profile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a user's developer profile with embedded experience and
// education histories. Exactly one profile exists per user id (unique
// index on user_id). Version is the optimistic-concurrency token.
type Profile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Company        string   `bson:"company,omitempty" json:"company,omitempty"`
	Website        string   `bson:"website,omitempty" json:"website,omitempty"`
	Location       string   `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Status         string   `bson:"status" json:"status"`
	GithubUsername string   `bson:"github_username,omitempty" json:"github_username,omitempty"`
	Skills         []string `bson:"skills" json:"skills"`
	Social         Social   `bson:"social,omitempty" json:"social,omitempty"`

	// Newest-first: additions prepend.
	Experience []Experience `bson:"experience" json:"experience"`
	Education  []Education  `bson:"education" json:"education"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Version   int64     `bson:"version" json:"-"`
}

// Social holds optional social-network links.
type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Experience is one work-history entry. ID is unique within the owning
// profile.
type Experience struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Company     string     `bson:"company" json:"company"`
	Location    string     `bson:"location,omitempty" json:"location,omitempty"`
	From        time.Time  `bson:"from" json:"from"`
	To          *time.Time `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool       `bson:"current" json:"current"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

// Education is one education-history entry. ID is unique within the owning
// profile.
type Education struct {
	ID           string     `bson:"id" json:"id"`
	School       string     `bson:"school" json:"school"`
	Degree       string     `bson:"degree" json:"degree"`
	FieldOfStudy string     `bson:"field_of_study" json:"field_of_study"`
	From         time.Time  `bson:"from" json:"from"`
	To           *time.Time `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool       `bson:"current" json:"current"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
}
