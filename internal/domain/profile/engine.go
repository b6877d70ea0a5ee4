// internal/domain/profile/engine.go

// Package profile holds the pure mutation rules for the Profile aggregate:
// partial upsert of scalar fields, skills tokenization, and the ordered
// experience/education histories.
package profile

import (
	"strings"
	"time"

	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Engine applies profile mutations. Now and NewID are injectable for
// deterministic tests.
type Engine struct {
	Now   func() time.Time
	NewID func() string
}

// NewEngine returns an Engine with the wall clock and UUID entry ids.
func NewEngine() Engine {
	return Engine{Now: time.Now, NewID: uuid.NewString}
}

// UpsertFields carries the scalar profile fields for an upsert. Nil
// pointers mean "leave the existing value alone"; set pointers overwrite,
// even with an empty string. Skills is the raw comma-separated form.
type UpsertFields struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// SplitSkills tokenizes a comma-separated skills string into a trimmed,
// order-preserving slice. Empty tokens are dropped.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ApplyUpsert creates a profile for userID when existing is nil, or merges
// the provided fields into a copy of *existing. Fields omitted from the
// command never null out stored values. Status and skills are required on
// creation only.
func (e Engine) ApplyUpsert(existing *models.Profile, userID primitive.ObjectID, f UpsertFields) (models.Profile, error) {
	now := e.Now().UTC()

	var p models.Profile
	if existing == nil {
		if f.Status == nil || strings.TrimSpace(*f.Status) == "" {
			return models.Profile{}, apperr.Validation("status is required")
		}
		if f.Skills == nil || strings.TrimSpace(*f.Skills) == "" {
			return models.Profile{}, apperr.Validation("skills is required")
		}
		p = models.Profile{
			UserID:     userID,
			Experience: []models.Experience{},
			Education:  []models.Education{},
			CreatedAt:  now,
		}
	} else {
		p = *existing
	}

	if f.Company != nil {
		p.Company = *f.Company
	}
	if f.Website != nil {
		p.Website = *f.Website
	}
	if f.Location != nil {
		p.Location = *f.Location
	}
	if f.Bio != nil {
		p.Bio = *f.Bio
	}
	if f.Status != nil {
		p.Status = *f.Status
	}
	if f.GithubUsername != nil {
		p.GithubUsername = *f.GithubUsername
	}
	if f.Skills != nil {
		p.Skills = SplitSkills(*f.Skills)
	}
	if f.Youtube != nil {
		p.Social.Youtube = *f.Youtube
	}
	if f.Twitter != nil {
		p.Social.Twitter = *f.Twitter
	}
	if f.Facebook != nil {
		p.Social.Facebook = *f.Facebook
	}
	if f.Linkedin != nil {
		p.Social.Linkedin = *f.Linkedin
	}
	if f.Instagram != nil {
		p.Social.Instagram = *f.Instagram
	}

	p.UpdatedAt = now
	return p, nil
}

// ExperienceInput carries a new work-history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// AddExperience validates the entry, assigns a fresh id, and prepends it.
func (e Engine) AddExperience(p models.Profile, in ExperienceInput) (models.Profile, error) {
	if strings.TrimSpace(in.Title) == "" {
		return p, apperr.Validation("title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		return p, apperr.Validation("company is required")
	}
	if in.From.IsZero() {
		return p, apperr.Validation("from date is required")
	}
	exp := models.Experience{
		ID:          e.NewID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = append([]models.Experience{exp}, p.Experience...)
	return p, nil
}

// RemoveExperience removes the entry with expID. A missing id is a no-op:
// the unchanged profile comes back with no error. Callers that need
// existence feedback must check the entry list themselves.
func (e Engine) RemoveExperience(p models.Profile, expID string) models.Profile {
	kept := make([]models.Experience, 0, len(p.Experience))
	for _, exp := range p.Experience {
		if exp.ID != expID {
			kept = append(kept, exp)
		}
	}
	p.Experience = kept
	return p
}

// EducationInput carries a new education-history entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// AddEducation validates the entry, assigns a fresh id, and prepends it.
func (e Engine) AddEducation(p models.Profile, in EducationInput) (models.Profile, error) {
	if strings.TrimSpace(in.School) == "" {
		return p, apperr.Validation("school is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		return p, apperr.Validation("degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		return p, apperr.Validation("field of study is required")
	}
	if in.From.IsZero() {
		return p, apperr.Validation("from date is required")
	}
	edu := models.Education{
		ID:           e.NewID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p.Education = append([]models.Education{edu}, p.Education...)
	return p, nil
}

// RemoveEducation removes the entry with eduID, with the same no-op-on-miss
// contract as RemoveExperience.
func (e Engine) RemoveEducation(p models.Profile, eduID string) models.Profile {
	kept := make([]models.Education, 0, len(p.Education))
	for _, edu := range p.Education {
		if edu.ID != eduID {
			kept = append(kept, edu)
		}
	}
	p.Education = kept
	return p
}
