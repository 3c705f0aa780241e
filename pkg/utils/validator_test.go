package utils

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"ClientName", "client_name"},
		{"ShortDescription", "short_description"},
		{"LinkedinURL", "linkedin_url"},
		{"LinkURL", "link_url"},
		{"ID", "id"},
		{"email", "email"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.in))
		})
	}
}

func TestValidationErrorMap(t *testing.T) {
	type contactForm struct {
		Name    string `validate:"required,max=100"`
		Email   string `validate:"required,email"`
		Message string `validate:"required"`
		Rating  int    `validate:"omitempty,gte=1,lte=5"`
	}

	v := validator.New()

	t.Run("必填与格式错误", func(t *testing.T) {
		err := v.Struct(contactForm{Email: "not-an-email", Message: "hi"})
		require.Error(t, err)

		fields := ValidationErrorMap(err)
		assert.Equal(t, "The name field is required.", fields["name"])
		assert.Equal(t, "The email field must be a valid email address.", fields["email"])
		assert.NotContains(t, fields, "message")
	})

	t.Run("数值范围错误", func(t *testing.T) {
		err := v.Struct(contactForm{Name: "a", Email: "a@b.com", Message: "hi", Rating: 9})
		require.Error(t, err)

		fields := ValidationErrorMap(err)
		assert.Equal(t, "The rating field must be less than or equal to 5.", fields["rating"])
	})

	t.Run("JSON语法错误", func(t *testing.T) {
		var dst map[string]interface{}
		err := json.Unmarshal([]byte(`{bad json`), &dst)
		require.Error(t, err)

		fields := ValidationErrorMap(err)
		assert.Equal(t, "The request body is not valid JSON.", fields["body"])
	})

	t.Run("JSON类型错误", func(t *testing.T) {
		var dst struct {
			Year int `json:"year"`
		}
		err := json.Unmarshal([]byte(`{"year":"abc"}`), &dst)
		require.Error(t, err)

		fields := ValidationErrorMap(err)
		assert.Contains(t, fields["year"], "should be of type")
	})

	t.Run("nil错误返回nil", func(t *testing.T) {
		assert.Nil(t, ValidationErrorMap(nil))
	})
}
