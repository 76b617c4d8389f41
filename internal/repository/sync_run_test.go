//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"gradebench-backend/internal/database/models"
	"gradebench-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SyncRunRepositoryTestSuite tests the SyncRunRepository
type SyncRunRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SyncRunRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SyncRunRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSyncRunRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SyncRunRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SyncRunRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SyncRunRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests recording a finished run
func (suite *SyncRunRepositoryTestSuite) TestCreate() {
	course := suite.factories.Course.Create()
	suite.NoError(NewCourseRepository(suite.baseTestSuite.DB).Create(course))

	now := time.Now()
	run := &models.SyncRun{
		Actor:      "tester",
		Kind:       "full",
		Phase:      "completed",
		ErrorCount: 2,
		StartedAt:  now.Add(-time.Minute),
		FinishedAt: &now,
		CourseID:   &course.ID,
	}

	suite.NoError(suite.repo.Create(run))

	found, err := suite.repo.GetByID(run.ID)
	suite.NoError(err)
	suite.Equal("completed", found.Phase)
	suite.Equal(2, found.ErrorCount)
}

// TestGetLatestByCourse tests that the most recent run wins
func (suite *SyncRunRepositoryTestSuite) TestGetLatestByCourse() {
	course := suite.factories.Course.Create()
	suite.NoError(NewCourseRepository(suite.baseTestSuite.DB).Create(course))

	old := &models.SyncRun{
		Actor: "tester", Kind: "full", Phase: "failed",
		StartedAt: time.Now().Add(-time.Hour), CourseID: &course.ID,
	}
	recent := &models.SyncRun{
		Actor: "tester", Kind: "full", Phase: "completed",
		StartedAt: time.Now(), CourseID: &course.ID,
	}
	suite.NoError(suite.repo.Create(old))
	suite.NoError(suite.repo.Create(recent))

	found, err := suite.repo.GetLatestByCourse(course.ID, "full")

	suite.NoError(err)
	suite.Equal(recent.ID, found.ID)
	suite.Equal("completed", found.Phase)
}

// TestGetLatestByCourseNoRuns tests the empty history case
func (suite *SyncRunRepositoryTestSuite) TestGetLatestByCourseNoRuns() {
	course := suite.factories.Course.Create()
	suite.NoError(NewCourseRepository(suite.baseTestSuite.DB).Create(course))

	_, err := suite.repo.GetLatestByCourse(course.ID, "full")

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestSyncRunRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SyncRunRepositoryTestSuite))
}
