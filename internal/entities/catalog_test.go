package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_JSONOmitsUnloadedAuthor(t *testing.T) {
	book := Book{
		ID:              1,
		ISBN:            "978-1-85326-062-9",
		Title:           "War and Peace",
		PublicationYear: 1869,
		AuthorID:        1,
	}

	body, err := json.Marshal(book)
	require.NoError(t, err)

	assert.NotContains(t, string(body), `"author":`)
	assert.Contains(t, string(body), `"author_id":1`)
}

func TestBook_JSONIncludesLoadedAuthor(t *testing.T) {
	book := Book{
		ID:       1,
		Title:    "War and Peace",
		AuthorID: 1,
		Author: &Author{
			ID:        1,
			Name:      "Leo Tolstoy",
			BirthDate: time.Date(1828, 9, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	body, err := json.Marshal(book)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"author":`)
	assert.Contains(t, string(body), "Leo Tolstoy")
}
