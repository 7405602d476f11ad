package usecase

import (
	"context"
	"errors"

	"talentmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (repository.CandidateProfile, error)
	UpdateSkills(ctx context.Context, userID uuid.UUID, skills string) (repository.CandidateProfile, error)
}

type Profile struct {
	profiles repository.CandidateProfileRepository
	resolver SkillResolverUsecase
}

func NewProfileUsecase(profiles repository.CandidateProfileRepository, resolver SkillResolverUsecase) *Profile {
	return &Profile{profiles: profiles, resolver: resolver}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (repository.CandidateProfile, error) {
	if userID == uuid.Nil {
		return repository.CandidateProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.CandidateProfile{}, ErrProfileNotFound
		}
		return repository.CandidateProfile{}, ErrInternal
	}
	return p, nil
}

// UpdateSkills canonicalizes the submitted skill string through the
// vocabulary and stores the corrected form. This is the single write-back
// the matching core performs on a profile.
func (u *Profile) UpdateSkills(ctx context.Context, userID uuid.UUID, skills string) (repository.CandidateProfile, error) {
	if userID == uuid.Nil {
		return repository.CandidateProfile{}, ErrUnauthorized
	}

	canonical := u.resolver.CanonicalizeList(ctx, skills, uuid.NullUUID{UUID: userID, Valid: true})

	if err := u.profiles.UpdateSkills(ctx, userID, canonical); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.CandidateProfile{}, ErrProfileNotFound
		}
		return repository.CandidateProfile{}, ErrInternal
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return repository.CandidateProfile{}, ErrInternal
	}
	return p, nil
}
