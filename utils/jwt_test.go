package utils

import "testing"

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123", "admin")
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken lỗi: %v", err)
	}
	if claims.UserID != "user-123" || claims.Role != "admin" {
		t.Fatalf("claims sai: %+v", claims)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken("user-123", "teacher")
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := VerifyToken(token); err == nil {
		t.Fatalf("token ký bằng secret khác phải bị từ chối")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := VerifyToken("không phải jwt"); err == nil {
		t.Fatalf("chuỗi rác phải bị từ chối")
	}
}
