package main

import (
	"fmt"
	"log"
	"os"

	"gradebench-backend/internal/config"
	"gradebench-backend/internal/database"
	"gradebench-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the YAML sample files
type CourseData struct {
	CanvasID      int64  `yaml:"canvas_id"`
	Name          string `yaml:"name"`
	CourseCode    string `yaml:"course_code"`
	Term          string `yaml:"term"`
	WorkflowState string `yaml:"workflow_state"`
}

type StudentData struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	CanvasUserID *int64 `yaml:"canvas_user_id,omitempty"`
	TeamName     string `yaml:"team_name,omitempty"`
}

type TeamData struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description,omitempty"`
	CourseCode    string `yaml:"course_code"`
	CanvasGroupID *int64 `yaml:"canvas_group_id,omitempty"`
}

type SampleData struct {
	Courses  []CourseData  `yaml:"courses"`
	Teams    []TeamData    `yaml:"teams"`
	Students []StudentData `yaml:"students"`
}

func main() {
	path := "scripts/sample_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	var data SampleData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}

	if err := loadSampleData(db, &data); err != nil {
		log.Fatalf("load sample data: %v", err)
	}
	log.Printf("loaded %d courses, %d teams, %d students from %s",
		len(data.Courses), len(data.Teams), len(data.Students), path)
}

// loadSampleData upserts everything in dependency order: courses first, then
// teams, then students with their team assignments.
func loadSampleData(db *gorm.DB, data *SampleData) error {
	coursesByCode := make(map[string]*models.Course)
	for _, c := range data.Courses {
		course, err := upsertCourse(db, &c)
		if err != nil {
			return fmt.Errorf("course %s: %w", c.CourseCode, err)
		}
		coursesByCode[course.CourseCode] = course
	}

	teamsByName := make(map[string]*models.Team)
	for _, t := range data.Teams {
		course, ok := coursesByCode[t.CourseCode]
		if !ok {
			return fmt.Errorf("team %s references unknown course %s", t.Name, t.CourseCode)
		}
		team, err := upsertTeam(db, course, &t)
		if err != nil {
			return fmt.Errorf("team %s: %w", t.Name, err)
		}
		teamsByName[team.Name] = team
	}

	for _, s := range data.Students {
		if err := upsertStudent(db, teamsByName, &s); err != nil {
			return fmt.Errorf("student %s: %w", s.Email, err)
		}
	}
	return nil
}

func upsertCourse(db *gorm.DB, data *CourseData) (*models.Course, error) {
	var course models.Course
	err := db.First(&course, "canvas_id = ?", data.CanvasID).Error
	if err == gorm.ErrRecordNotFound {
		course = models.Course{
			CanvasID:      data.CanvasID,
			Name:          data.Name,
			CourseCode:    data.CourseCode,
			Term:          data.Term,
			WorkflowState: data.WorkflowState,
		}
		return &course, db.Create(&course).Error
	}
	if err != nil {
		return nil, err
	}

	course.Name = data.Name
	course.CourseCode = data.CourseCode
	course.Term = data.Term
	course.WorkflowState = data.WorkflowState
	return &course, db.Save(&course).Error
}

func upsertTeam(db *gorm.DB, course *models.Course, data *TeamData) (*models.Team, error) {
	var team models.Team
	err := db.First(&team, "course_id = ? AND name = ?", course.ID, data.Name).Error
	if err == gorm.ErrRecordNotFound {
		team = models.Team{
			Name:          data.Name,
			Description:   data.Description,
			CourseID:      course.ID,
			CanvasGroupID: data.CanvasGroupID,
		}
		return &team, db.Create(&team).Error
	}
	if err != nil {
		return nil, err
	}

	team.Description = data.Description
	team.CanvasGroupID = data.CanvasGroupID
	return &team, db.Save(&team).Error
}

func upsertStudent(db *gorm.DB, teamsByName map[string]*models.Team, data *StudentData) error {
	var student models.Student
	err := db.First(&student, "email = ?", data.Email).Error
	if err == gorm.ErrRecordNotFound {
		student = models.Student{
			Name:         data.Name,
			Email:        data.Email,
			CanvasUserID: data.CanvasUserID,
		}
		if data.TeamName != "" {
			team, ok := teamsByName[data.TeamName]
			if !ok {
				return fmt.Errorf("unknown team %s", data.TeamName)
			}
			student.TeamID = &team.ID
		}
		return db.Create(&student).Error
	}
	if err != nil {
		return err
	}

	student.Name = data.Name
	student.CanvasUserID = data.CanvasUserID
	if data.TeamName != "" {
		team, ok := teamsByName[data.TeamName]
		if !ok {
			return fmt.Errorf("unknown team %s", data.TeamName)
		}
		student.TeamID = &team.ID
	}
	return db.Save(&student).Error
}
