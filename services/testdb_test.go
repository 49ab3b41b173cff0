package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/eduplay-backend/models"
)

func testCtx() context.Context {
	return context.Background()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory thất bại: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Grade{},
		&models.Subject{},
		&models.Content{},
	); err != nil {
		t.Fatalf("migrate thất bại: %v", err)
	}
	return db
}

func seedGradeSubject(t *testing.T, db *gorm.DB, gradeName, subjectName string) (*models.Grade, *models.Subject) {
	t.Helper()

	catalog := NewCatalogService(db)
	grade, err := catalog.CreateGrade(testCtx(), gradeName)
	if err != nil {
		t.Fatalf("tạo grade thất bại: %v", err)
	}
	subject, err := catalog.CreateSubject(testCtx(), subjectName, grade.ID)
	if err != nil {
		t.Fatalf("tạo subject thất bại: %v", err)
	}
	return grade, subject
}
