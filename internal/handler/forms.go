package handler

import (
	"net/http"
	"regexp"

	"github.com/jellydator/validation"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterForm holds form input values for the registration page.
type RegisterForm struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

func registerFormFromRequest(r *http.Request) RegisterForm {
	return RegisterForm{
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		Email:     r.FormValue("email"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		IsAdmin:   r.FormValue("is_admin") == "true",
	}
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required, validation.Length(1, 20)),
		validation.Field(&f.Password, validation.Required),
		validation.Field(&f.Email, validation.Required, validation.Length(1, 50), validation.Match(emailRe).Error("must be a valid email address")),
		validation.Field(&f.FirstName, validation.Required, validation.Length(1, 30)),
		validation.Field(&f.LastName, validation.Required, validation.Length(1, 30)),
	)
}

// LoginForm holds form input values for the login page.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func loginFormFromRequest(r *http.Request) LoginForm {
	return LoginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// FeedbackForm holds form input values for creating or editing feedback.
type FeedbackForm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func feedbackFormFromRequest(r *http.Request) FeedbackForm {
	return FeedbackForm{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}
}

func (f FeedbackForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Content, validation.Required),
	)
}

// fieldErrors flattens a validation error into a field -> message map for
// template rendering. A non-validation error maps to a blank field.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}
	verrs, ok := err.(validation.Errors)
	if !ok {
		out[""] = err.Error()
		return out
	}
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}
