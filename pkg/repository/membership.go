package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RecipeBox/pkg/model"
)

var (
	ErrMembershipExists   = errors.New("membership already exists")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrSelfReference      = errors.New("owner and target are the same")
)

type MembershipRepository interface {
	AddMembership(ctx context.Context, relation model.Relation, ownerID uint, targetID uint) error
	MembershipExists(ctx context.Context, relation model.Relation, ownerID uint, targetID uint) (bool, error)
	MembershipTargets(ctx context.Context, relation model.Relation, ownerID uint, targetIDs []uint) (map[uint]bool, error)
	RemoveMembership(ctx context.Context, relation model.Relation, ownerID uint, targetID uint) error
	TargetExists(ctx context.Context, relation model.Relation, targetID uint) (bool, error)
}

func (r *Repository) AddMembership(ctx context.Context, relation model.Relation, ownerID uint, targetID uint) error {
	result := r.DB.WithContext(ctx).Exec("INSERT INTO ? (?, ?, created_at) VALUES (?, ?, ?)",
		clause.Table{Name: relation.Table},
		clause.Column{Name: relation.OwnerColumn},
		clause.Column{Name: relation.TargetColumn},
		ownerID, targetID, time.Now().UTC())

	switch {
	case result.Error == nil:
		return nil
	case errors.Is(result.Error, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", ErrMembershipExists, relation.Name)
	case errors.Is(result.Error, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %s", ErrSelfReference, relation.Name)
	case errors.Is(result.Error, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrInvalidReference, result.Error)
	default:
		r.Logger.Error("error adding membership", zap.String("relation", relation.Name),
			zap.Uint("owner_id", ownerID), zap.Uint("target_id", targetID), zap.Error(result.Error))

		return result.Error
	}
}

func (r *Repository) RemoveMembership(ctx context.Context, relation model.Relation, ownerID uint, targetID uint) error {
	result := r.DB.WithContext(ctx).Exec("DELETE FROM ? WHERE ? = ? AND ? = ?",
		clause.Table{Name: relation.Table},
		clause.Column{Name: relation.OwnerColumn}, ownerID,
		clause.Column{Name: relation.TargetColumn}, targetID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrMembershipNotFound, relation.Name)
	}

	return nil
}

func (r *Repository) MembershipExists(ctx context.Context, relation model.Relation, ownerID uint, targetID uint) (bool, error) {
	var exists bool

	result := r.DB.WithContext(ctx).Raw("SELECT EXISTS (SELECT 1 FROM ? WHERE ? = ? AND ? = ?)",
		clause.Table{Name: relation.Table},
		clause.Column{Name: relation.OwnerColumn}, ownerID,
		clause.Column{Name: relation.TargetColumn}, targetID).
		Scan(&exists)
	if result.Error != nil {
		return false, result.Error
	}

	return exists, nil
}

// MembershipTargets reports which of targetIDs the owner holds a membership for.
func (r *Repository) MembershipTargets(ctx context.Context, relation model.Relation, ownerID uint, targetIDs []uint) (map[uint]bool, error) {
	members := make(map[uint]bool, len(targetIDs))

	if len(targetIDs) == 0 {
		return members, nil
	}

	var found []uint

	result := r.DB.WithContext(ctx).Raw("SELECT ? FROM ? WHERE ? = ? AND ? IN ?",
		clause.Column{Name: relation.TargetColumn},
		clause.Table{Name: relation.Table},
		clause.Column{Name: relation.OwnerColumn}, ownerID,
		clause.Column{Name: relation.TargetColumn}, targetIDs).
		Scan(&found)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range found {
		members[id] = true
	}

	return members, nil
}

func (r *Repository) TargetExists(ctx context.Context, relation model.Relation, targetID uint) (bool, error) {
	var exists bool

	result := r.DB.WithContext(ctx).Raw("SELECT EXISTS (SELECT 1 FROM ? WHERE id = ?)",
		clause.Table{Name: relation.TargetTable}, targetID).
		Scan(&exists)
	if result.Error != nil {
		return false, result.Error
	}

	return exists, nil
}
