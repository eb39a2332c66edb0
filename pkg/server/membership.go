package server

import (
	"context"
	"errors"
	"fmt"

	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

// membershipToggle adds, removes and reports (owner, target) pairs of a single relation.
type membershipToggle struct {
	repo     repository.MembershipRepository
	relation model.Relation
}

type membershipValFn func(ctx context.Context, ownerID uint, targetID uint) error

func runMembershipValFns(ctx context.Context, ownerID uint, targetID uint, fns ...membershipValFn) error {
	for _, fn := range fns {
		if err := fn(ctx, ownerID, targetID); err != nil {
			return err
		}
	}

	return nil
}

func (m membershipToggle) add(ctx context.Context, ownerID uint, targetID uint) error {
	err := runMembershipValFns(ctx, ownerID, targetID,
		m.targetExists,
		m.notSelf,
		m.notAlreadyMember)
	if err != nil {
		return err
	}

	err = m.repo.AddMembership(ctx, m.relation, ownerID, targetID)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrMembershipExists):
		return m.alreadyAdded()
	case errors.Is(err, repository.ErrSelfReference):
		return m.selfReference()
	case errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%w: %s target %d", api.ErrNotFound, m.relation.Name, targetID)
	default:
		return err
	}
}

func (m membershipToggle) remove(ctx context.Context, ownerID uint, targetID uint) error {
	if err := m.targetExists(ctx, ownerID, targetID); err != nil {
		return err
	}

	err := m.repo.RemoveMembership(ctx, m.relation, ownerID, targetID)
	if errors.Is(err, repository.ErrMembershipNotFound) {
		return fmt.Errorf("%w: not in %s", api.ErrMembershipNotFound, m.relation.Name)
	}

	return err
}

// targets reports which of targetIDs the owner holds. Anonymous owners (ID 0) hold nothing.
func (m membershipToggle) targets(ctx context.Context, ownerID uint, targetIDs []uint) (map[uint]bool, error) {
	if ownerID == 0 || len(targetIDs) == 0 {
		return map[uint]bool{}, nil
	}

	return m.repo.MembershipTargets(ctx, m.relation, ownerID, targetIDs)
}

func (m membershipToggle) holds(ctx context.Context, ownerID uint, targetID uint) (bool, error) {
	if ownerID == 0 {
		return false, nil
	}

	return m.repo.MembershipExists(ctx, m.relation, ownerID, targetID)
}

func (m membershipToggle) targetExists(ctx context.Context, _ uint, targetID uint) error {
	exists, err := m.repo.TargetExists(ctx, m.relation, targetID)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: %s target %d", api.ErrNotFound, m.relation.Name, targetID)
	}

	return nil
}

func (m membershipToggle) notSelf(_ context.Context, ownerID uint, targetID uint) error {
	if !m.relation.AllowSelf && ownerID == targetID {
		return m.selfReference()
	}

	return nil
}

func (m membershipToggle) notAlreadyMember(ctx context.Context, ownerID uint, targetID uint) error {
	exists, err := m.repo.MembershipExists(ctx, m.relation, ownerID, targetID)
	if err != nil {
		return err
	}

	if exists {
		return m.alreadyAdded()
	}

	return nil
}

func (m membershipToggle) alreadyAdded() error {
	return fmt.Errorf("%w: already added to %s", api.ErrInvalidInput, m.relation.Name)
}

func (m membershipToggle) selfReference() error {
	return fmt.Errorf("%w: cannot add yourself to %s", api.ErrInvalidInput, m.relation.Name)
}
