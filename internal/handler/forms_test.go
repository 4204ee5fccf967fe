package handler

import (
	"strings"
	"testing"
)

func TestRegisterFormValidate(t *testing.T) {
	valid := RegisterForm{
		Username:  "alice",
		Password:  "pw1",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	tests := []struct {
		name      string
		mutate    func(*RegisterForm)
		wantField string
	}{
		{"valid", func(f *RegisterForm) {}, ""},
		{"missing username", func(f *RegisterForm) { f.Username = "" }, "username"},
		{"username too long", func(f *RegisterForm) { f.Username = strings.Repeat("a", 21) }, "username"},
		{"missing password", func(f *RegisterForm) { f.Password = "" }, "password"},
		{"missing email", func(f *RegisterForm) { f.Email = "" }, "email"},
		{"malformed email", func(f *RegisterForm) { f.Email = "not-an-email" }, "email"},
		{"email too long", func(f *RegisterForm) { f.Email = strings.Repeat("a", 45) + "@example.com" }, "email"},
		{"missing first name", func(f *RegisterForm) { f.FirstName = "" }, "first_name"},
		{"last name too long", func(f *RegisterForm) { f.LastName = strings.Repeat("x", 31) }, "last_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := form.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			errs := fieldErrors(err)
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("no error for field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestFeedbackFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		form      FeedbackForm
		wantField string
	}{
		{"valid", FeedbackForm{Title: "Hi", Content: "body"}, ""},
		{"missing title", FeedbackForm{Content: "body"}, "title"},
		{"title too long", FeedbackForm{Title: strings.Repeat("t", 101), Content: "body"}, "title"},
		{"missing content", FeedbackForm{Title: "Hi"}, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			errs := fieldErrors(err)
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("no error for field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestLoginFormValidate(t *testing.T) {
	if err := (LoginForm{Username: "alice", Password: "pw"}).Validate(); err != nil {
		t.Errorf("valid form: %v", err)
	}
	if err := (LoginForm{}).Validate(); err == nil {
		t.Error("empty form should fail validation")
	}
}
