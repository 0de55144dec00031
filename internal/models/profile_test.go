package models_test

import (
	"testing"

	"equiedge/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProfile_DisplayName(t *testing.T) {
	p := &models.Profile{FirstName: "Ada", LastName: "Okafor"}
	assert.Equal(t, "Ada Okafor", p.DisplayName("ada@example.com"))

	p = &models.Profile{FirstName: "Ada"}
	assert.Equal(t, "Ada", p.DisplayName("ada@example.com"))

	p = &models.Profile{}
	assert.Equal(t, "ada", p.DisplayName("ada@example.com"))

	p = &models.Profile{}
	assert.Equal(t, "User", p.DisplayName(""))
}
