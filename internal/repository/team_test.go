//go:build integration
// +build integration

package repository

import (
	"testing"

	"gradebench-backend/internal/database/models"
	"gradebench-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createCourse() *models.Course {
	course := suite.factories.Course.Create()
	err := NewCourseRepository(suite.baseTestSuite.DB).Create(course)
	suite.NoError(err)
	return course
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	course := suite.createCourse()

	team := suite.factories.Team.Create(course.ID)

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestGetByCanvasGroupID tests looking a team up by its remote group link
func (suite *TeamRepositoryTestSuite) TestGetByCanvasGroupID() {
	course := suite.createCourse()

	team := suite.factories.Team.Imported(course.ID, 9001)
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByCanvasGroupID(9001)

	suite.NoError(err)
	suite.Equal(team.ID, found.ID)
}

// TestGetByCanvasGroupIDNotFound tests that manual teams are unreachable by group id
func (suite *TeamRepositoryTestSuite) TestGetByCanvasGroupIDNotFound() {
	course := suite.createCourse()

	manual := suite.factories.Team.Create(course.ID)
	suite.NoError(suite.repo.Create(manual))

	_, err := suite.repo.GetByCanvasGroupID(9001)

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByName tests retrieving a team by name within a course
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	course := suite.createCourse()

	team := suite.factories.Team.Create(course.ID)
	team.Name = "Alpha"
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName(course.ID, "Alpha")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByName(course.ID, "nonexistent-team")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetImportedByCourseID tests that only linked teams are returned
func (suite *TeamRepositoryTestSuite) TestGetImportedByCourseID() {
	course := suite.createCourse()

	imported := suite.factories.Team.Imported(course.ID, 9001)
	manual := suite.factories.Team.Create(course.ID)
	suite.NoError(suite.repo.Create(imported))
	suite.NoError(suite.repo.Create(manual))

	teams, err := suite.repo.GetImportedByCourseID(course.ID)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(imported.ID, teams[0].ID)
}

// TestGetImportedByCategoryID tests filtering imported teams by category
func (suite *TeamRepositoryTestSuite) TestGetImportedByCategoryID() {
	course := suite.createCourse()

	category := suite.factories.GroupCategory.Create(course.ID)
	suite.NoError(NewGroupCategoryRepository(suite.baseTestSuite.DB).Create(category))

	inCategory := suite.factories.Team.Imported(course.ID, 9001)
	inCategory.CategoryID = &category.ID
	elsewhere := suite.factories.Team.Imported(course.ID, 9002)
	suite.NoError(suite.repo.Create(inCategory))
	suite.NoError(suite.repo.Create(elsewhere))

	teams, err := suite.repo.GetImportedByCategoryID(category.ID)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(inCategory.ID, teams[0].ID)
}

// TestGetWithMembers tests preloading team members
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	course := suite.createCourse()

	team := suite.factories.Team.Create(course.ID)
	suite.NoError(suite.repo.Create(team))

	studentRepo := NewStudentRepository(suite.baseTestSuite.DB)
	for i := 0; i < 2; i++ {
		student := suite.factories.Student.WithTeam(team.ID)
		suite.NoError(studentRepo.Create(student))
	}

	found, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Len(found.Members, 2)

	count, err := suite.repo.GetMemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	course := suite.createCourse()

	team := suite.factories.Team.Create(course.ID)
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDuplicateCanvasGroupID tests the unique constraint on the remote link
func (suite *TeamRepositoryTestSuite) TestDuplicateCanvasGroupID() {
	course := suite.createCourse()

	first := suite.factories.Team.Imported(course.ID, 9001)
	second := suite.factories.Team.Imported(course.ID, 9001)
	suite.NoError(suite.repo.Create(first))

	err := suite.repo.Create(second)

	suite.Error(err)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
