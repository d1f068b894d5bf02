package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzaikin/boardroom/internal/client/models"
)

func TestUpsertByID(t *testing.T) {
	list := []models.Meeting{{ID: "a", Title: "one"}}

	list = upsertByID(list, meetingID, models.Meeting{ID: "b", Title: "two"})
	assert.Len(t, list, 2)

	// Replacing keeps position and length.
	list = upsertByID(list, meetingID, models.Meeting{ID: "a", Title: "one again"})
	assert.Len(t, list, 2)
	assert.Equal(t, "one again", list[0].Title)
}

func TestRemoveByID(t *testing.T) {
	list := []models.Meeting{{ID: "a"}, {ID: "b"}}

	list = removeByID(list, meetingID, "a")
	assert.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)

	// Removing an absent id is a no-op.
	list = removeByID(list, meetingID, "zzz")
	assert.Len(t, list, 1)
}
