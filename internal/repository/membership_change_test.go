//go:build integration
// +build integration

package repository

import (
	"testing"

	"gradebench-backend/internal/database/models"
	"gradebench-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MembershipChangeRepositoryTestSuite tests the MembershipChangeRepository
type MembershipChangeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipChangeRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipChangeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipChangeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipChangeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipChangeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipChangeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndHistory tests the audit trail of a moved student
func (suite *MembershipChangeRepositoryTestSuite) TestCreateAndHistory() {
	course := suite.factories.Course.Create()
	suite.NoError(NewCourseRepository(suite.baseTestSuite.DB).Create(course))

	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	first := suite.factories.Team.Create(course.ID)
	second := suite.factories.Team.Create(course.ID)
	suite.NoError(teamRepo.Create(first))
	suite.NoError(teamRepo.Create(second))

	student := suite.factories.Student.Create()
	suite.NoError(NewStudentRepository(suite.baseTestSuite.DB).Create(student))

	suite.NoError(suite.repo.Create(&models.TeamMembershipChange{
		StudentID: student.ID,
		ToTeamID:  &first.ID,
		Source:    models.MembershipSourceManual,
	}))
	suite.NoError(suite.repo.Create(&models.TeamMembershipChange{
		StudentID:  student.ID,
		FromTeamID: &first.ID,
		ToTeamID:   &second.ID,
		Source:     models.MembershipSourceSync,
	}))

	changes, err := suite.repo.GetByStudentID(student.ID)

	suite.NoError(err)
	suite.Len(changes, 2)
	suite.Equal(models.MembershipSourceSync, changes[0].Source)
	suite.Equal(&second.ID, changes[0].ToTeamID)
}

// TestHistoryIsPerStudent tests that histories do not bleed across students
func (suite *MembershipChangeRepositoryTestSuite) TestHistoryIsPerStudent() {
	studentRepo := NewStudentRepository(suite.baseTestSuite.DB)
	ada := suite.factories.Student.Create()
	grace := suite.factories.Student.Create()
	suite.NoError(studentRepo.Create(ada))
	suite.NoError(studentRepo.Create(grace))

	suite.NoError(suite.repo.Create(&models.TeamMembershipChange{
		StudentID: ada.ID,
		Source:    models.MembershipSourceManual,
	}))

	changes, err := suite.repo.GetByStudentID(grace.ID)

	suite.NoError(err)
	suite.Empty(changes)
}

// Run the test suite
func TestMembershipChangeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipChangeRepositoryTestSuite))
}
