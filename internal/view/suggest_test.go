package view

import (
	"testing"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	records := []domain.MediaRecord{
		{Title: "Interstellar"},
		{Title: "Inception"},
		{Title: "The Dark Knight"},
	}

	assert.Equal(t, []string{"Interstellar"}, Suggest(records, "intrstlr", 5))
	assert.Equal(t, []string{"The Dark Knight"}, Suggest(records, "kniggt", 5), "typo within one edit")
	assert.Empty(t, Suggest(records, "zzz", 5))
	assert.Nil(t, Suggest(records, "  ", 5))
	assert.Len(t, Suggest(records, "in", 1), 1)
}
