package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vnkhanh/eduplay-backend/models"
)

// CatalogService sở hữu bảng grades/subjects và quan hệ giữa chúng
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListGrades trả danh sách khối lớp tăng dần theo id.
// Lỗi transport vẫn trả slice rỗng kèm error để caller hiển thị được danh sách trống.
func (s *CatalogService) ListGrades(ctx context.Context) ([]models.Grade, error) {
	var grades []models.Grade
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&grades).Error; err != nil {
		return []models.Grade{}, &TransportError{Err: err}
	}
	return grades, nil
}

// ListSubjects lọc theo grade_id nếu được truyền, nil thì trả tất cả
func (s *CatalogService) ListSubjects(ctx context.Context, gradeID *uint) ([]models.Subject, error) {
	var subjects []models.Subject
	query := s.DB.WithContext(ctx).Model(&models.Subject{})
	if gradeID != nil {
		query = query.Where("grade_id = ?", *gradeID)
	}
	if err := query.Order("id ASC").Find(&subjects).Error; err != nil {
		return []models.Subject{}, &TransportError{Err: err}
	}
	return subjects, nil
}

// CreateGrade không khử trùng lặp theo tên: tên trùng là quy ước UX, không phải invariant
func (s *CatalogService) CreateGrade(ctx context.Context, name string) (*models.Grade, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "Tên khối lớp không được trống")
	}

	grade := models.Grade{
		Name: name,
		Slug: slug.Make(name),
	}
	if err := s.DB.WithContext(ctx).Create(&grade).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return &grade, nil
}

func (s *CatalogService) CreateSubject(ctx context.Context, name string, gradeID uint) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "Tên môn học không được trống")
	}

	// grade_id phải trỏ tới một Grade tồn tại
	var grade models.Grade
	if err := s.DB.WithContext(ctx).First(&grade, "id = ?", gradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newValidationError("grade_id", "Khối lớp không tồn tại")
		}
		return nil, &TransportError{Err: err}
	}

	subject := models.Subject{
		Name:    name,
		GradeID: grade.ID,
		Slug:    slug.Make(name),
	}
	if err := s.DB.WithContext(ctx).Create(&subject).Error; err != nil {
		return nil, &TransportError{Err: err}
	}
	return &subject, nil
}

func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// GetGrade / GetSubject dùng nội bộ cho bước resolve nhãn khi tạo Content
func (s *CatalogService) GetGrade(ctx context.Context, id uint) (*models.Grade, error) {
	var grade models.Grade
	if err := s.DB.WithContext(ctx).First(&grade, "id = ?", id).Error; err != nil {
		return nil, wrapDBError(err, "khối lớp", formatUint(id))
	}
	return &grade, nil
}

func (s *CatalogService) GetSubject(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.DB.WithContext(ctx).First(&subject, "id = ?", id).Error; err != nil {
		return nil, wrapDBError(err, "môn học", formatUint(id))
	}
	return &subject, nil
}
