package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/mocks"
	"droscher.com/RecipeBox/pkg/auth"
	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
)

type AuthTestSuite struct {
	suite.Suite
	users        *mocks.UserRepository
	config       *configs.Config
	manager      *auth.Manager
	observedLogs *observer.ObservedLogs
	user         *model.User
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.users = mocks.NewUserRepository(suite.T())
	suite.config = &configs.Config{Auth: configs.Auth{SecretKey: "test-secret", TokenTTL: time.Hour}}

	observedZapCore, observedLogs := observer.New(zap.WarnLevel)
	suite.observedLogs = observedLogs
	suite.manager = auth.NewAuthManager(suite.config, suite.users, zap.New(observedZapCore))
	suite.user = &model.User{ID: 3, UUID: uuid.New(), Username: "cook"}
}

// serve runs a request through Authenticate and reports the user the handler saw.
func (suite *AuthTestSuite) serve(authorization string) (*httptest.ResponseRecorder, uint, bool) {
	var (
		seenID uint
		called bool
	)

	handler := suite.manager.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seenID = auth.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/users/me/", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder, seenID, called
}

func (suite *AuthTestSuite) TestAuthenticate_AcceptsIssuedToken() {
	token, err := suite.manager.IssueToken(suite.user)
	suite.Require().NoError(err)

	for _, prefix := range []string{"Bearer ", "bearer ", "Token "} {
		suite.Run(prefix, func() {
			suite.users.EXPECT().GetUserByUUID(mock.Anything, suite.user.UUID).Return(suite.user, nil).Once()

			recorder, userID, called := suite.serve(prefix + token)
			suite.True(called)
			suite.Equal(http.StatusNoContent, recorder.Code)
			suite.Equal(uint(3), userID)
		})
	}
}

func (suite *AuthTestSuite) TestAuthenticate_AnonymousPassesThrough() {
	recorder, userID, called := suite.serve("")
	suite.True(called)
	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Zero(userID)
}

func (suite *AuthTestSuite) TestAuthenticate_RejectsBadFormat() {
	recorder, _, called := suite.serve("Basic dXNlcjpwYXNz")
	suite.False(called)
	suite.Equal(http.StatusUnauthorized, recorder.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	suite.Equal(auth.ErrBadFormat.Error(), body["detail"])
}

func (suite *AuthTestSuite) TestAuthenticate_RejectsForeignSignature() {
	other := auth.NewAuthManager(&configs.Config{Auth: configs.Auth{SecretKey: "other-secret", TokenTTL: time.Hour}},
		suite.users, zap.NewNop())
	token, err := other.IssueToken(suite.user)
	suite.Require().NoError(err)

	recorder, _, called := suite.serve("Bearer " + token)
	suite.False(called)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("rejected token").Len())
}

func (suite *AuthTestSuite) TestAuthenticate_RejectsExpiredToken() {
	suite.config.Auth.TokenTTL = -time.Minute
	token, err := suite.manager.IssueToken(suite.user)
	suite.Require().NoError(err)

	recorder, _, called := suite.serve("Bearer " + token)
	suite.False(called)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestAuthenticate_RejectsDeletedUser() {
	token, err := suite.manager.IssueToken(suite.user)
	suite.Require().NoError(err)
	suite.users.EXPECT().GetUserByUUID(mock.Anything, suite.user.UUID).Return(nil, repository.ErrUserNotFound)

	recorder, _, called := suite.serve("Bearer " + token)
	suite.False(called)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestRequireUser_RejectsAnonymous() {
	handler := suite.manager.Authenticate(auth.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/me/", nil))

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Equal("application/json", recorder.Header().Get("Content-Type"))
}

func (suite *AuthTestSuite) TestPasswords() {
	hash, err := auth.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	suite.NotEqual("s3cret-pass", hash)

	suite.NoError(auth.CheckPassword(hash, "s3cret-pass"))
	suite.ErrorIs(auth.CheckPassword(hash, "wrong"), auth.ErrWrongPassword)
}
