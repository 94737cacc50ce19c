//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"cd-console-backend/internal/database/models"
	"cd-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProviderTokenRepositoryTestSuite tests the ProviderTokenRepository
type ProviderTokenRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProviderTokenRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProviderTokenRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProviderTokenRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProviderTokenRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProviderTokenRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProviderTokenRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetTokenScoping tests that resolution honors the full
// (organization, user, provider) scope
func (suite *ProviderTokenRepositoryTestSuite) TestGetTokenScoping() {
	orgID := uuid.New()
	userID := uuid.New()

	token := suite.factories.ProviderToken.Create(orgID, userID)
	suite.NoError(suite.repo.Create(token))

	found, err := suite.repo.GetToken(orgID, userID, models.ProviderGitHub)
	suite.NoError(err)
	suite.Equal(token.Token, found.Token)

	// Same user, different organization: no token
	_, err = suite.repo.GetToken(uuid.New(), userID, models.ProviderGitHub)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	// Same scope, different provider: no token
	_, err = suite.repo.GetToken(orgID, userID, models.ProviderGitee)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestCreateDuplicateScope tests that one scope holds at most one token
func (suite *ProviderTokenRepositoryTestSuite) TestCreateDuplicateScope() {
	orgID := uuid.New()
	userID := uuid.New()

	token1 := suite.factories.ProviderToken.Create(orgID, userID)
	suite.NoError(suite.repo.Create(token1))

	token2 := suite.factories.ProviderToken.Create(orgID, userID)

	err := suite.repo.Create(token2)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestProviderTokenRepositoryTestSuite runs the test suite
func TestProviderTokenRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderTokenRepositoryTestSuite))
}
