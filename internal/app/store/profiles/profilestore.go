// internal/app/store/profiles/profilestore.go

// Package profilestore is the persistence gateway for the Profile
// aggregate. Mutations follow the same versioned read-modify-write pattern
// as the posts store; DeleteWithUser additionally spans the users
// collection inside a transaction.
package profilestore

import (
	"context"
	"errors"

	"github.com/dalemusser/devlink/internal/app/system/txn"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/dalemusser/devlink/internal/domain/profile"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const casAttempts = 5

type Store struct {
	c      *mongo.Collection
	users  *mongo.Collection
	client *mongo.Client
	engine profile.Engine
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:      db.Collection("profiles"),
		users:  db.Collection("users"),
		client: db.Client(),
		engine: profile.NewEngine(),
	}
}

// NewWithEngine lets tests pin the engine's clock and id source.
func NewWithEngine(db *mongo.Database, e profile.Engine) *Store {
	s := New(db)
	s.engine = e
	return s
}

// GetByUser loads the profile owned by userID.
func (s *Store) GetByUser(ctx context.Context, userID primitive.ObjectID) (models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Profile{}, apperr.NotFound("profile not found")
		}
		return models.Profile{}, apperr.Persistence("load profile", err)
	}
	return p, nil
}

// List returns all profiles, newest-updated first.
func (s *Store) List(ctx context.Context) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Persistence("list profiles", err)
	}
	defer cur.Close(ctx)

	profiles := []models.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, apperr.Persistence("decode profiles", err)
	}
	return profiles, nil
}

// Upsert creates the caller's profile or merge-updates the existing one.
// Provided fields overwrite; omitted fields are left alone. A concurrent
// first-time upsert loses the insert race on the unique user_id index and
// retries as an update.
func (s *Store) Upsert(ctx context.Context, userID primitive.ObjectID, f profile.UpsertFields) (models.Profile, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		existing, err := s.GetByUser(ctx, userID)
		if err != nil && apperr.KindOf(err) != apperr.KindNotFound {
			return models.Profile{}, err
		}

		var base *models.Profile
		if err == nil {
			base = &existing
		}

		next, err := s.engine.ApplyUpsert(base, userID, f)
		if err != nil {
			return models.Profile{}, err
		}

		if base == nil {
			next.ID = primitive.NewObjectID()
			next.Version = 1
			if _, err := s.c.InsertOne(ctx, next); err != nil {
				if wafflemongo.IsDup(err) {
					continue // another writer created it; merge instead
				}
				return models.Profile{}, apperr.Persistence("insert profile", err)
			}
			return next, nil
		}

		readVersion := existing.Version
		next.Version = readVersion + 1
		res, err := s.c.ReplaceOne(ctx, bson.M{"_id": existing.ID, "version": readVersion}, next)
		if err != nil {
			return models.Profile{}, apperr.Persistence("save profile", err)
		}
		if res.MatchedCount == 1 {
			return next, nil
		}
	}
	return models.Profile{}, apperr.Persistence("profile update conflict not resolved", nil)
}

// AddExperience prepends a work-history entry to the caller's profile.
// The caller must have upserted a profile first.
func (s *Store) AddExperience(ctx context.Context, userID primitive.ObjectID, in profile.ExperienceInput) (models.Profile, error) {
	return s.mutate(ctx, userID, func(p models.Profile) (models.Profile, error) {
		return s.engine.AddExperience(p, in)
	})
}

// RemoveExperience removes an entry by id; a missing id is a documented
// no-op returning the unchanged profile.
func (s *Store) RemoveExperience(ctx context.Context, userID primitive.ObjectID, expID string) (models.Profile, error) {
	return s.mutate(ctx, userID, func(p models.Profile) (models.Profile, error) {
		return s.engine.RemoveExperience(p, expID), nil
	})
}

// AddEducation prepends an education-history entry to the caller's profile.
func (s *Store) AddEducation(ctx context.Context, userID primitive.ObjectID, in profile.EducationInput) (models.Profile, error) {
	return s.mutate(ctx, userID, func(p models.Profile) (models.Profile, error) {
		return s.engine.AddEducation(p, in)
	})
}

// RemoveEducation removes an entry by id with the same no-op-on-miss
// contract as RemoveExperience.
func (s *Store) RemoveEducation(ctx context.Context, userID primitive.ObjectID, eduID string) (models.Profile, error) {
	return s.mutate(ctx, userID, func(p models.Profile) (models.Profile, error) {
		return s.engine.RemoveEducation(p, eduID), nil
	})
}

// DeleteWithUser removes the profile and its owning identity record as one
// logical operation. On deployments with transaction support the two
// deletes commit or roll back together; standalone dev servers fall back to
// ordered deletes (profile first, so a crash never leaves a profile whose
// user is gone).
func (s *Store) DeleteWithUser(ctx context.Context, userID primitive.ObjectID) error {
	del := func(c context.Context) error {
		if _, err := s.c.DeleteOne(c, bson.M{"user_id": userID}); err != nil {
			return err
		}
		if _, err := s.users.DeleteOne(c, bson.M{"_id": userID}); err != nil {
			return err
		}
		return nil
	}

	err := txn.WithTransaction(ctx, s.client, func(sc mongo.SessionContext) error {
		return del(sc)
	})
	if err == nil {
		return nil
	}
	if !txn.IsNotSupported(err) {
		return apperr.Persistence("delete profile with user", err)
	}
	if err := del(ctx); err != nil {
		return apperr.Persistence("delete profile with user", err)
	}
	return nil
}

// mutate runs the load → apply → compare-and-swap loop keyed by user id.
func (s *Store) mutate(ctx context.Context, userID primitive.ObjectID, apply func(models.Profile) (models.Profile, error)) (models.Profile, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		p, err := s.GetByUser(ctx, userID)
		if err != nil {
			return models.Profile{}, err
		}

		next, err := apply(p)
		if err != nil {
			return models.Profile{}, err
		}
		next.UpdatedAt = s.engine.Now().UTC()

		readVersion := p.Version
		next.Version = readVersion + 1

		res, err := s.c.ReplaceOne(ctx, bson.M{"_id": p.ID, "version": readVersion}, next)
		if err != nil {
			return models.Profile{}, apperr.Persistence("save profile", err)
		}
		if res.MatchedCount == 1 {
			return next, nil
		}
	}
	return models.Profile{}, apperr.Persistence("profile update conflict not resolved", nil)
}
