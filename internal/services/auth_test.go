package services_test

import (
	"testing"
	"time"

	"taskvista/backend/internal/database"
	"taskvista/backend/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service services.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	db, err := database.OpenTest()
	suite.Require().NoError(err)
	suite.db = db
	suite.service = services.NewAuthService()
}

func (suite *AuthServiceTestSuite) TestRegisterAndLogin() {
	user, err := suite.service.RegisterUser(suite.db, services.RegistrationRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "super-secret-1",
	})
	suite.Require().NoError(err)
	suite.Equal("John Doe", user.Name)
	suite.Equal("Member", user.Role)
	suite.NotEqual("super-secret-1", user.Password, "password must be stored hashed")

	loggedIn, err := suite.service.LoginUser(suite.db, "john@example.com", "super-secret-1")
	suite.Require().NoError(err)
	suite.Equal(user.ID, loggedIn.ID)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	_, err := suite.service.RegisterUser(suite.db, services.RegistrationRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "super-secret-1",
	})
	suite.Require().NoError(err)

	_, err = suite.service.RegisterUser(suite.db, services.RegistrationRequest{
		Name:     "Other John",
		Email:    "john@example.com",
		Password: "super-secret-2",
	})
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.service.RegisterUser(suite.db, services.RegistrationRequest{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "super-secret-1",
	})
	suite.Require().NoError(err)

	_, err = suite.service.LoginUser(suite.db, "jane@example.com", "wrong-password")
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.LoginUser(suite.db, "nobody@example.com", "whatever-pass")
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestGenerateToken() {
	user, err := suite.service.RegisterUser(suite.db, services.RegistrationRequest{
		Name:     "Bob Johnson",
		Email:    "bob@example.com",
		Password: "super-secret-1",
	})
	suite.Require().NoError(err)

	tokenStr, err := suite.service.GenerateToken(user.ID, time.Hour)
	suite.Require().NoError(err)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte("your-secret-key"), nil
	})
	suite.Require().NoError(err)
	suite.True(token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	suite.Require().True(ok)
	suite.Equal(user.ID.String(), claims["user_id"])
	suite.Equal("taskvista-backend", claims["iss"])
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
