package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestAddUser_AssignsUUID() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(3)))
	suite.mock.ExpectCommit()

	user, err := suite.repository.AddUser(context.Background(), model.User{
		Email:        "cook@example.com",
		Username:     "cook",
		PasswordHash: "hash",
	})
	suite.Require().NoError(err)
	suite.Equal(uint(3), user.ID)
	suite.NotEqual(uuid.Nil, user.UUID)
}

func (suite *UserTestSuite) TestAddUser_ReportsDuplicate() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(pgError(uniqueViolation))
	suite.mock.ExpectRollback()

	user, err := suite.repository.AddUser(context.Background(), model.User{Email: "cook@example.com", Username: "cook"})
	suite.Require().ErrorIs(err, repository.ErrUserExists)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestGetUserByName_FindsUser() {
	suite.mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("cook", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(uint(3), "cook", "cook@example.com"))

	user, err := suite.repository.GetUserByName(context.Background(), "cook")
	suite.Require().NoError(err)
	suite.Equal(uint(3), user.ID)
}

func (suite *UserTestSuite) TestGetUserFromEmail_ReturnsNotFound() {
	suite.mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "nobody@example.com")
	suite.Require().ErrorIs(err, repository.ErrUserNotFound)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestListUsers_PagesResults() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(6, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(uint(7), "baker").AddRow(uint(8), "chef"))

	users, total, err := suite.repository.ListUsers(context.Background(), 6, 6)
	suite.Require().NoError(err)
	suite.Equal(int64(8), total)
	suite.Len(users, 2)
}

func (suite *UserTestSuite) TestListSubscribedAuthors_JoinsSubscriptions() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "subscriptions" WHERE user_id = $1`)).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT users.* FROM "users" INNER JOIN subscriptions s on s.subscribed_to_id = users.id WHERE s.user_id = $1 ORDER BY s.id LIMIT $2`)).
		WithArgs(uint(3), 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(uint(4), "baker"))

	users, total, err := suite.repository.ListSubscribedAuthors(context.Background(), 3, 6, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(users, 1)
	suite.Equal("baker", users[0].Username)
}

func (suite *UserTestSuite) TestUpdateAvatar_ReturnsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "users" SET "avatar"=\$1,"updated_at"=\$2 WHERE "users"."id" = \$3`).
		WithArgs("avatars/cook.png", sqlmock.AnyArg(), uint(30)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.UpdateAvatar(context.Background(), 30, "avatars/cook.png")
	suite.ErrorIs(err, repository.ErrUserNotFound)
}

func (suite *UserTestSuite) TestUpdatePassword_UpdatesHash() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "users" SET "password_hash"=\$1`).
		WithArgs("newhash", sqlmock.AnyArg(), uint(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.UpdatePassword(context.Background(), 3, "newhash"))
}
