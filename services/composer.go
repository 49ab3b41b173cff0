package services

import (
	"context"
	"strings"

	"github.com/vnkhanh/eduplay-backend/models"
)

// Composer giữ trạng thái chọn khối lớp / môn học dạng cascade của form
// tạo nội dung admin. Quy tắc chuyển trạng thái được viết tường minh để
// test được độc lập, thay vì tính lại ngầm mỗi lần render.
type Composer struct {
	Catalog  *CatalogService
	Contents *ContentService

	SelectedGradeID   *uint
	SelectedSubjectID *uint
	FilteredSubjects  []models.Subject

	Title       string
	Description string
	ContentType models.ContentType
	YouTubeLink string
	FileURL     string
}

func NewComposer(catalog *CatalogService, contents *ContentService) *Composer {
	return &Composer{
		Catalog:          catalog,
		Contents:         contents,
		FilteredSubjects: []models.Subject{},
	}
}

// SelectGrade: mỗi lần SelectedGradeID đổi (kể cả về nil) thì
// FilteredSubjects tính lại theo grade mới và SelectedSubjectID luôn bị
// reset về nil, dù môn cũ có còn hợp lệ dưới filter mới hay không.
func (c *Composer) SelectGrade(ctx context.Context, gradeID *uint) error {
	c.SelectedGradeID = gradeID
	c.SelectedSubjectID = nil

	if gradeID == nil {
		c.FilteredSubjects = []models.Subject{}
		return nil
	}

	subjects, err := c.Catalog.ListSubjects(ctx, gradeID)
	if err != nil {
		c.FilteredSubjects = []models.Subject{}
		return err
	}
	c.FilteredSubjects = subjects
	return nil
}

// SelectSubject chỉ nhận môn nằm trong danh sách đã lọc
func (c *Composer) SelectSubject(subjectID uint) error {
	for i := range c.FilteredSubjects {
		if c.FilteredSubjects[i].ID == subjectID {
			c.SelectedSubjectID = &subjectID
			return nil
		}
	}
	return newValidationError("subject_id", "Môn học không thuộc khối lớp đã chọn")
}

// AddGrade: tạo khối lớp mới inline, refresh danh sách và auto-select
func (c *Composer) AddGrade(ctx context.Context, name string) (*models.Grade, error) {
	grade, err := c.Catalog.CreateGrade(ctx, name)
	if err != nil {
		return nil, err
	}
	id := grade.ID
	if err := c.SelectGrade(ctx, &id); err != nil {
		return nil, err
	}
	return grade, nil
}

// AddSubject: tạo môn học mới inline dưới khối lớp đang chọn,
// refresh danh sách lọc và auto-select môn vừa tạo
func (c *Composer) AddSubject(ctx context.Context, name string) (*models.Subject, error) {
	if c.SelectedGradeID == nil {
		return nil, newValidationError("grade_id", "Chưa chọn khối lớp")
	}

	subject, err := c.Catalog.CreateSubject(ctx, name, *c.SelectedGradeID)
	if err != nil {
		return nil, err
	}

	subjects, err := c.Catalog.ListSubjects(ctx, c.SelectedGradeID)
	if err != nil {
		return nil, err
	}
	c.FilteredSubjects = subjects

	id := subject.ID
	c.SelectedSubjectID = &id
	return subject, nil
}

// Submit kiểm tra đủ trường rồi mới gọi repository; lỗi validation
// báo theo field và không có network call nào được thực hiện.
// Thành công thì form quay về mặc định rỗng.
func (c *Composer) Submit(ctx context.Context) (*models.Content, error) {
	fields := map[string]string{}
	if c.SelectedGradeID == nil {
		fields["grade_id"] = "Chưa chọn khối lớp"
	}
	if c.SelectedSubjectID == nil {
		fields["subject_id"] = "Chưa chọn môn học"
	}
	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = "Tiêu đề không được trống"
	}
	if strings.TrimSpace(c.Description) == "" {
		fields["description"] = "Mô tả không được trống"
	}
	if !c.ContentType.IsValid() {
		fields["content_type"] = "Loại nội dung không hợp lệ"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	content, err := c.Contents.Create(ctx, CreateContentInput{
		GradeID:     *c.SelectedGradeID,
		SubjectID:   *c.SelectedSubjectID,
		Title:       c.Title,
		Description: c.Description,
		ContentType: c.ContentType,
		YouTubeLink: c.YouTubeLink,
		FileURL:     c.FileURL,
	})
	if err != nil {
		return nil, err
	}

	c.Reset()
	return content, nil
}

// Reset đưa form về trạng thái rỗng ban đầu
func (c *Composer) Reset() {
	c.SelectedGradeID = nil
	c.SelectedSubjectID = nil
	c.FilteredSubjects = []models.Subject{}
	c.Title = ""
	c.Description = ""
	c.ContentType = ""
	c.YouTubeLink = ""
	c.FileURL = ""
}
