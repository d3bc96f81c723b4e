package identity_test

import (
	"testing"
	"time"

	"propulse-backend/config"
	"propulse-backend/identity"
	"propulse-backend/models"
	"propulse-backend/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ManagerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	manager *identity.Manager
	tokens  *identity.TokenManager
}

func (suite *ManagerTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:identity_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("Failed to migrate test database:", err)
	}

	suite.db = db
	suite.tokens = identity.NewTokenManager("test-secret", time.Hour)
	suite.manager = identity.NewManager(repositories.NewUserRepository(db), suite.tokens)
}

func (suite *ManagerTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM user_roles")
	suite.db.Exec("DELETE FROM users")
	suite.db.Exec("DELETE FROM roles")
}

func (suite *ManagerTestSuite) TestCreateUser() {
	user, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")

	suite.Nil(identityErrors)
	suite.NotNil(user)
	suite.Equal("alice@example.com", user.Email)
	suite.Equal("alice@example.com", user.Username)
	suite.NotEqual("Passw0rd!", user.PasswordHash)

	var count int64
	suite.db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *ManagerTestSuite) TestCreateUserDuplicateEmail() {
	_, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")
	suite.Nil(identityErrors)

	user, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")
	suite.Nil(user)
	suite.NotEmpty(identityErrors)

	codes := errorCodes(identityErrors)
	suite.Contains(codes, identity.CodeDuplicateEmail)

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *ManagerTestSuite) TestCreateUserWeakPassword() {
	user, identityErrors := suite.manager.CreateUser("bob@example.com", "abc")

	suite.Nil(user)
	codes := errorCodes(identityErrors)
	suite.Contains(codes, identity.CodePasswordTooShort)
	suite.Contains(codes, identity.CodePasswordRequiresDigit)
	suite.Contains(codes, identity.CodePasswordRequiresUpper)
	suite.Contains(codes, identity.CodePasswordRequiresNonAlnum)
	suite.NotContains(codes, identity.CodePasswordRequiresLower)

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *ManagerTestSuite) TestCreateUserInvalidEmail() {
	user, identityErrors := suite.manager.CreateUser("not-an-email", "Passw0rd!")

	suite.Nil(user)
	suite.Contains(errorCodes(identityErrors), identity.CodeInvalidEmail)
}

func (suite *ManagerTestSuite) TestSignIn() {
	_, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")
	suite.Nil(identityErrors)

	token, user, err := suite.manager.SignIn("alice@example.com", "Passw0rd!")
	suite.NoError(err)
	suite.NotEmpty(token)
	suite.Equal("alice@example.com", user.Email)
}

func (suite *ManagerTestSuite) TestSignInFailureIsOpaque() {
	_, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")
	suite.Nil(identityErrors)

	_, _, wrongPassword := suite.manager.SignIn("alice@example.com", "WrongPass1!")
	_, _, unknownEmail := suite.manager.SignIn("nobody@example.com", "Passw0rd!")

	suite.Error(wrongPassword)
	suite.Error(unknownEmail)
	suite.Equal(wrongPassword.Error(), unknownEmail.Error())
	suite.Equal(identity.InvalidLoginMessage, wrongPassword.Error())
}

func (suite *ManagerTestSuite) TestTokenRoundTrip() {
	user, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")
	suite.Nil(identityErrors)

	token, err := suite.tokens.Issue(user)
	suite.NoError(err)

	claims, err := suite.tokens.Parse(token)
	suite.NoError(err)
	suite.Equal(user.ID.String(), claims.UserID)
	suite.Equal(user.Username, claims.Username)
	suite.Contains(claims.Roles, models.RoleContributor)
}

func (suite *ManagerTestSuite) TestParseRejectsForgedToken() {
	other := identity.NewTokenManager("other-secret", time.Hour)

	user, identityErrors := suite.manager.CreateUser("alice@example.com", "Passw0rd!")
	suite.Nil(identityErrors)

	forged, err := other.Issue(user)
	suite.NoError(err)

	_, err = suite.tokens.Parse(forged)
	suite.Error(err)
}

func errorCodes(identityErrors []identity.Error) []string {
	codes := make([]string, 0, len(identityErrors))
	for _, e := range identityErrors {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}
