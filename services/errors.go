package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// ValidationError: thiếu/sai trường đầu vào, báo theo từng field,
// chưa có round trip nào được thực hiện khi lỗi này xảy ra
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "dữ liệu không hợp lệ"
	}
	// sắp theo tên field để thông điệp ổn định giữa các lần chạy
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// NotFoundError: tra cứu theo id không có kết quả, hoặc id không nằm
// trong scope đáng lẽ phải chứa nó
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("không tìm thấy %s: %s", e.Entity, e.Key)
}

// TransportError: record store bên ngoài không truy cập được hoặc trả lỗi.
// Không retry; caller phải tự gọi lại.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "lỗi kết nối record store: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// wrapDBError dịch lỗi từ GORM về error kind của catalog core
func wrapDBError(err error, entity, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, Key: key}
	}
	return &TransportError{Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
