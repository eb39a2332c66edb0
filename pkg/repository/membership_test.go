package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
)

type MembershipTestSuite struct {
	RepositorySuite
}

func TestMembershipTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipTestSuite))
}

func (suite *MembershipTestSuite) TestAddMembership_InsertsRow() {
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "favorites" ("user_id", "recipe_id", created_at) VALUES ($1, $2, $3)`)).
		WithArgs(uint(3), uint(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	suite.NoError(suite.repository.AddMembership(context.Background(), model.Favorites, 3, 7))
}

func (suite *MembershipTestSuite) TestAddMembership_UsesRelationColumns() {
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "subscriptions" ("user_id", "subscribed_to_id", created_at)`)).
		WithArgs(uint(3), uint(4), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	suite.NoError(suite.repository.AddMembership(context.Background(), model.Subscriptions, 3, 4))
}

func (suite *MembershipTestSuite) TestAddMembership_ReportsDuplicate() {
	suite.mock.ExpectExec(`INSERT INTO "shopping_carts"`).WillReturnError(pgError(uniqueViolation))

	err := suite.repository.AddMembership(context.Background(), model.ShoppingCarts, 3, 7)
	suite.Require().ErrorIs(err, repository.ErrMembershipExists)
	suite.ErrorContains(err, "shopping cart")
}

func (suite *MembershipTestSuite) TestAddMembership_ReportsSelfReference() {
	suite.mock.ExpectExec(`INSERT INTO "subscriptions"`).WillReturnError(pgError(checkViolation))

	err := suite.repository.AddMembership(context.Background(), model.Subscriptions, 3, 3)
	suite.ErrorIs(err, repository.ErrSelfReference)
}

func (suite *MembershipTestSuite) TestAddMembership_ReportsMissingTarget() {
	suite.mock.ExpectExec(`INSERT INTO "favorites"`).WillReturnError(pgError(foreignKeyViolation))

	err := suite.repository.AddMembership(context.Background(), model.Favorites, 3, 700)
	suite.ErrorIs(err, repository.ErrInvalidReference)
}

func (suite *MembershipTestSuite) TestAddMembership_LogsUnexpectedErrors() {
	suite.mock.ExpectExec(`INSERT INTO "favorites"`).WillReturnError(sqlmock.ErrCancelled)

	err := suite.repository.AddMembership(context.Background(), model.Favorites, 3, 7)
	suite.Require().Error(err)
	suite.Equal(1, suite.observedLogs.FilterMessage("error adding membership").Len())
}

func (suite *MembershipTestSuite) TestRemoveMembership_DeletesRow() {
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE "user_id" = $1 AND "recipe_id" = $2`)).
		WithArgs(uint(3), uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	suite.NoError(suite.repository.RemoveMembership(context.Background(), model.Favorites, 3, 7))
}

func (suite *MembershipTestSuite) TestRemoveMembership_ReportsMissingRow() {
	suite.mock.ExpectExec(`DELETE FROM "shopping_carts"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := suite.repository.RemoveMembership(context.Background(), model.ShoppingCarts, 3, 7)
	suite.ErrorIs(err, repository.ErrMembershipNotFound)
}

func (suite *MembershipTestSuite) TestMembershipExists_ReturnsFlag() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM "favorites" WHERE "user_id" = $1 AND "recipe_id" = $2)`)).
		WithArgs(uint(3), uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := suite.repository.MembershipExists(context.Background(), model.Favorites, 3, 7)
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *MembershipTestSuite) TestMembershipTargets_ReturnsMatchingTargets() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "recipe_id" FROM "shopping_carts" WHERE "user_id" = $1 AND "recipe_id" IN ($2,$3,$4)`)).
		WithArgs(uint(3), uint(7), uint(8), uint(9)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}).AddRow(uint(7)).AddRow(uint(9)))

	members, err := suite.repository.MembershipTargets(context.Background(), model.ShoppingCarts, 3, []uint{7, 8, 9})
	suite.Require().NoError(err)
	suite.Equal(map[uint]bool{7: true, 9: true}, members)
}

func (suite *MembershipTestSuite) TestMembershipTargets_SkipsQueryWithoutTargets() {
	members, err := suite.repository.MembershipTargets(context.Background(), model.Favorites, 3, nil)
	suite.Require().NoError(err)
	suite.Empty(members)
}

func (suite *MembershipTestSuite) TestTargetExists_ChecksTargetTable() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM "users" WHERE id = $1)`)).
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := suite.repository.TargetExists(context.Background(), model.Subscriptions, 4)
	suite.Require().NoError(err)
	suite.False(exists)
}
