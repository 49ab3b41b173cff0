package services

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vnkhanh/eduplay-backend/models"
)

func createScopeContents(t *testing.T, svc *ContentService, gradeID, subjectID uint, titles []string) []uuid.UUID {
	t.Helper()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i, title := range titles {
		content, err := svc.Create(testCtx(), CreateContentInput{
			GradeID:     gradeID,
			SubjectID:   subjectID,
			Title:       title,
			Description: "bài " + title,
			ContentType: models.ContentTypeYouTube,
			YouTubeLink: "https://youtu.be/abc12345678",
		})
		if err != nil {
			t.Fatalf("tạo %q lỗi: %v", title, err)
		}
		svc.DB.Model(&models.Content{}).Where("id = ?", content.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, content.ID)
	}
	return ids
}

func TestSiblingsBoundaries(t *testing.T) {
	db := newTestDB(t)
	grade, subject := seedGradeSubject(t, db, "Grade 1", "Math")
	contents := NewContentService(db, NewCatalogService(db))
	seq := NewSequenceService(contents)

	// X cũ nhất, Z mới nhất -> danh sách scope là [Z, Y, X]
	ids := createScopeContents(t, contents, grade.ID, subject.ID, []string{"X", "Y", "Z"})
	x, y, z := ids[0], ids[1], ids[2]

	// phần tử đầu (Z, mới nhất): prev nil, next là Y
	nav, err := seq.Siblings(testCtx(), z, "1st", "math")
	if err != nil {
		t.Fatalf("Siblings(Z) lỗi: %v", err)
	}
	if nav.PrevID != nil {
		t.Fatalf("Z phải có prev_id nil, có %v", nav.PrevID)
	}
	if nav.NextID == nil || *nav.NextID != y {
		t.Fatalf("Z phải có next_id = Y, có %v", nav.NextID)
	}

	// phần tử giữa (Y): prev là Z (mới hơn), next là X (cũ hơn) — không đảo chiều
	nav, err = seq.Siblings(testCtx(), y, "1st", "math")
	if err != nil {
		t.Fatalf("Siblings(Y) lỗi: %v", err)
	}
	if nav.PrevID == nil || *nav.PrevID != z {
		t.Fatalf("Y phải có prev_id = Z, có %v", nav.PrevID)
	}
	if nav.NextID == nil || *nav.NextID != x {
		t.Fatalf("Y phải có next_id = X, có %v", nav.NextID)
	}

	// phần tử cuối (X, cũ nhất): next nil
	nav, err = seq.Siblings(testCtx(), x, "1st", "math")
	if err != nil {
		t.Fatalf("Siblings(X) lỗi: %v", err)
	}
	if nav.NextID != nil {
		t.Fatalf("X phải có next_id nil, có %v", nav.NextID)
	}
	if nav.PrevID == nil || *nav.PrevID != y {
		t.Fatalf("X phải có prev_id = Y, có %v", nav.PrevID)
	}
}

func TestSiblingsNotInScope(t *testing.T) {
	db := newTestDB(t)
	grade, subject := seedGradeSubject(t, db, "Grade 1", "Math")
	contents := NewContentService(db, NewCatalogService(db))
	seq := NewSequenceService(contents)

	ids := createScopeContents(t, contents, grade.ID, subject.ID, []string{"X"})

	// id hợp lệ nhưng scope sai
	if _, err := seq.Siblings(testCtx(), ids[0], "2nd", "math"); !IsNotFound(err) {
		t.Fatalf("scope sai phải trả NotFoundError, có %v", err)
	}

	// id vừa bị xóa: sequencer phải trả NotFoundError, không panic
	if err := contents.Delete(testCtx(), ids[0]); err != nil {
		t.Fatalf("Delete lỗi: %v", err)
	}
	if _, err := seq.Siblings(testCtx(), ids[0], "1st", "math"); !IsNotFound(err) {
		t.Fatalf("id đã xóa phải trả NotFoundError, có %v", err)
	}
}

func TestPageNavigateProgress(t *testing.T) {
	seq := NewSequenceService(nil)
	pages := models.PageList{
		{Title: "a", Description: "a", ContentType: models.ContentTypeYouTube},
		{Title: "b", Description: "b", ContentType: models.ContentTypeImage},
		{Title: "c", Description: "c", ContentType: models.ContentTypeVideo},
	}

	wantProgress := []float64{100.0 / 3, 200.0 / 3, 100}
	for idx, want := range wantProgress {
		nav, err := seq.PageNavigate(pages, idx)
		if err != nil {
			t.Fatalf("PageNavigate(%d) lỗi: %v", idx, err)
		}
		if math.Abs(nav.ProgressPercent-want) > 1e-9 {
			t.Fatalf("progress tại %d = %v, muốn %v", idx, nav.ProgressPercent, want)
		}
	}

	// biên trái: prev bị khóa, prev_index giữ nguyên 0
	nav, _ := seq.PageNavigate(pages, 0)
	if nav.HasPrev || nav.PrevIndex != 0 {
		t.Fatalf("trang 0 không được có prev: %+v", nav)
	}
	if !nav.HasNext || nav.NextIndex != 1 {
		t.Fatalf("trang 0 phải có next = 1: %+v", nav)
	}

	// biên phải: next bị khóa, không wraparound
	nav, _ = seq.PageNavigate(pages, 2)
	if nav.HasNext || nav.NextIndex != 2 {
		t.Fatalf("trang cuối không được có next: %+v", nav)
	}
	if !nav.HasPrev || nav.PrevIndex != 1 {
		t.Fatalf("trang cuối phải có prev = 1: %+v", nav)
	}

	// chỉ số ngoài khoảng
	if _, err := seq.PageNavigate(pages, 3); !IsNotFound(err) {
		t.Fatalf("index ngoài khoảng phải trả NotFoundError, có %v", err)
	}
	if _, err := seq.PageNavigate(pages, -1); !IsNotFound(err) {
		t.Fatalf("index âm phải trả NotFoundError, có %v", err)
	}
}
