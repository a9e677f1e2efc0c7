package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

const photoDoc = `{
	"urls": {"regular": "https://images.example.com/p.jpg"},
	"user": {"name": "Jane", "profile_image": {"small": "https://images.example.com/a.jpg"}},
	"description": null,
	"likes": 12
}`

func TestRequire_Valid(t *testing.T) {
	doc := gjson.Parse(photoDoc)
	err := Require(doc,
		URLString("urls.regular"),
		NonEmptyString("user.name"),
		URLString("user.profile_image.small"),
		NullableString("description"),
		Number("likes"),
	)
	assert.NoError(t, err)
}

func TestRequire_Failures(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field Field
		want  string
	}{
		{"missing", `{}`, String("name"), "name: missing"},
		{"wrong type", `{"name": 3}`, String("name"), "name: expected string, got number"},
		{"null not allowed", `{"name": null}`, String("name"), "name: expected string, got null"},
		{"empty", `{"name": " "}`, NonEmptyString("name"), "name: empty"},
		{"relative url", `{"u": "/p.jpg"}`, URLString("u"), "u: unsupported scheme"},
		{"number as string", `{"t": "12"}`, Number("t"), "t: expected number, got string"},
		{"array index", `{"w": []}`, String("w.0.description"), "w.0.description: missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(gjson.Parse(tt.doc), tt.field)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestRequire_ReportsEveryField(t *testing.T) {
	err := Require(gjson.Parse(`{}`), String("a"), Number("b"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "a: missing")
		assert.Contains(t, err.Error(), "b: missing")
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://api.unsplash.com/photos/random"))
	assert.NoError(t, ValidateURL("http://127.0.0.1:8080/x"))
	assert.Error(t, ValidateURL("not a url"))
	assert.Error(t, ValidateURL("https://"))
	assert.Error(t, ValidateURL("file:///etc/passwd"))
	assert.Error(t, ValidateURL("://bad"))
}
