package services

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/vnkhanh/eduplay-backend/models"
)

// SiblingNav là kết quả điều hướng giữa các Content anh em trong cùng scope
// (class, subject). Danh sách scope xếp mới nhất trước, nên PrevID trỏ về
// bản ghi mới hơn và NextID về bản ghi cũ hơn. Không có wraparound.
type SiblingNav struct {
	Index  int        `json:"index"`
	Total  int        `json:"total"`
	PrevID *uuid.UUID `json:"prev_id"`
	NextID *uuid.UUID `json:"next_id"`
}

// PageNav là kết quả điều hướng giữa các Page trong một Content
type PageNav struct {
	Index           int         `json:"index"`
	Total           int         `json:"total"`
	Page            models.Page `json:"page"`
	HasPrev         bool        `json:"has_prev"`
	HasNext         bool        `json:"has_next"`
	PrevIndex       int         `json:"prev_index"`
	NextIndex       int         `json:"next_index"`
	ProgressPercent float64     `json:"progress_percent"`
}

type SequenceService struct {
	Contents *ContentService
}

func NewSequenceService(contents *ContentService) *SequenceService {
	return &SequenceService{Contents: contents}
}

// Siblings tìm vị trí của id trong danh sách scope mới-nhất-trước.
// id không có trong scope (kể cả vừa bị xóa trong lúc fetch) -> NotFoundError.
func (s *SequenceService) Siblings(ctx context.Context, id uuid.UUID, class, subject string) (*SiblingNav, error) {
	contents, err := s.Contents.List(ctx, ContentFilter{Class: class, Subject: subject})
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range contents {
		if contents[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, &NotFoundError{Entity: "nội dung trong scope", Key: id.String()}
	}

	nav := &SiblingNav{Index: index, Total: len(contents)}
	if index > 0 {
		prev := contents[index-1].ID
		nav.PrevID = &prev
	}
	if index < len(contents)-1 {
		next := contents[index+1].ID
		nav.NextID = &next
	}
	return nav, nil
}

// PageNavigate tính prev/next/progress cho một trang trong chuỗi pages
func (s *SequenceService) PageNavigate(pages models.PageList, pageIndex int) (*PageNav, error) {
	if pageIndex < 0 || pageIndex >= len(pages) {
		return nil, &NotFoundError{Entity: "trang", Key: strconv.Itoa(pageIndex)}
	}

	total := len(pages)
	nav := &PageNav{
		Index:     pageIndex,
		Total:     total,
		Page:      pages[pageIndex],
		HasPrev:   pageIndex > 0,
		HasNext:   pageIndex < total-1,
		PrevIndex: pageIndex,
		NextIndex: pageIndex,
		// chia số thực, không chia nguyên
		ProgressPercent: float64(pageIndex+1) / float64(total) * 100,
	}
	if nav.HasPrev {
		nav.PrevIndex = pageIndex - 1
	}
	if nav.HasNext {
		nav.NextIndex = pageIndex + 1
	}
	return nav, nil
}
