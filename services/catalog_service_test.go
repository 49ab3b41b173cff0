package services

import (
	"errors"
	"testing"
)

func TestListGradesOrderedByID(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	names := []string{"Grade 3", "Nursery", "Grade 1"}
	for _, name := range names {
		if _, err := catalog.CreateGrade(testCtx(), name); err != nil {
			t.Fatalf("tạo grade %q thất bại: %v", name, err)
		}
	}

	grades, err := catalog.ListGrades(testCtx())
	if err != nil {
		t.Fatalf("ListGrades lỗi: %v", err)
	}
	if len(grades) != 3 {
		t.Fatalf("muốn 3 grade, có %d", len(grades))
	}
	for i := 1; i < len(grades); i++ {
		if grades[i].ID <= grades[i-1].ID {
			t.Fatalf("danh sách không tăng dần theo id: %v", grades)
		}
	}
	// thứ tự tạo = thứ tự id, không sắp theo tên
	if grades[0].Name != "Grade 3" || grades[2].Name != "Grade 1" {
		t.Fatalf("thứ tự sai: %q, %q, %q", grades[0].Name, grades[1].Name, grades[2].Name)
	}
}

func TestListTransportFailure(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("lấy sql.DB lỗi: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("đóng kết nối lỗi: %v", err)
	}

	// store không truy cập được: vẫn trả slice rỗng (không nil) kèm TransportError
	var te *TransportError
	grades, err := catalog.ListGrades(testCtx())
	if !errors.As(err, &te) {
		t.Fatalf("ListGrades muốn TransportError, có %v", err)
	}
	if grades == nil || len(grades) != 0 {
		t.Fatalf("ListGrades lỗi transport phải trả slice rỗng, có %v", grades)
	}

	subjects, err := catalog.ListSubjects(testCtx(), nil)
	if !errors.As(err, &te) {
		t.Fatalf("ListSubjects muốn TransportError, có %v", err)
	}
	if subjects == nil || len(subjects) != 0 {
		t.Fatalf("ListSubjects lỗi transport phải trả slice rỗng, có %v", subjects)
	}
}

func TestCreateGradeValidation(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	for _, name := range []string{"", "   "} {
		if _, err := catalog.CreateGrade(testCtx(), name); !IsValidation(err) {
			t.Fatalf("tên %q phải trả ValidationError, có %v", name, err)
		}
	}

	// tên trùng được phép: không khử trùng lặp ở store
	if _, err := catalog.CreateGrade(testCtx(), "Grade 1"); err != nil {
		t.Fatalf("tạo lần 1 lỗi: %v", err)
	}
	if _, err := catalog.CreateGrade(testCtx(), "Grade 1"); err != nil {
		t.Fatalf("tên trùng phải được phép, có %v", err)
	}
}

func TestCreateSubjectValidation(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	grade, err := catalog.CreateGrade(testCtx(), "Grade 1")
	if err != nil {
		t.Fatalf("tạo grade lỗi: %v", err)
	}

	if _, err := catalog.CreateSubject(testCtx(), "  ", grade.ID); !IsValidation(err) {
		t.Fatalf("tên trống phải trả ValidationError, có %v", err)
	}
	if _, err := catalog.CreateSubject(testCtx(), "Math", 9999); !IsValidation(err) {
		t.Fatalf("grade_id không tồn tại phải trả ValidationError, có %v", err)
	}

	subject, err := catalog.CreateSubject(testCtx(), "Math", grade.ID)
	if err != nil {
		t.Fatalf("tạo subject lỗi: %v", err)
	}
	if subject.GradeID != grade.ID {
		t.Fatalf("subject.GradeID = %d, muốn %d", subject.GradeID, grade.ID)
	}
}

func TestListSubjectsFilterByGrade(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	g1, _ := catalog.CreateGrade(testCtx(), "Grade 1")
	g2, _ := catalog.CreateGrade(testCtx(), "Grade 2")
	catalog.CreateSubject(testCtx(), "Math", g1.ID)
	catalog.CreateSubject(testCtx(), "English", g1.ID)
	catalog.CreateSubject(testCtx(), "Science", g2.ID)

	filtered, err := catalog.ListSubjects(testCtx(), &g1.ID)
	if err != nil {
		t.Fatalf("ListSubjects lỗi: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("muốn 2 môn của Grade 1, có %d", len(filtered))
	}
	for _, s := range filtered {
		if s.GradeID != g1.ID {
			t.Fatalf("môn %q không thuộc grade %d", s.Name, g1.ID)
		}
	}

	all, err := catalog.ListSubjects(testCtx(), nil)
	if err != nil {
		t.Fatalf("ListSubjects không filter lỗi: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("muốn 3 môn tổng cộng, có %d", len(all))
	}
}
