package client_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campos-estilistas/salon-sdk/modules/crm/domain/aggregates/client"
)

func TestNew_DefaultsLastNameToSentinel(t *testing.T) {
	c := client.New("Ana", "")
	assert.Equal(t, client.SentinelLastName, c.LastName())
	assert.True(t, c.IsActive())

	c = client.New("Ana", "   ")
	assert.Equal(t, client.SentinelLastName, c.LastName())
}

func TestNew_Options(t *testing.T) {
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	c := client.New("Ana", "Gomez",
		client.WithEmail("ana@example.com"),
		client.WithPhone("+54 911 5555-1234"),
		client.WithBirthDate(birth),
		client.WithSourceRef(" 42 "),
	)

	assert.Equal(t, "ana@example.com", c.Email())
	assert.Equal(t, "+54 911 5555-1234", c.Phone())
	assert.Equal(t, birth, c.BirthDate())
	assert.Equal(t, "42", c.SourceRef())
}
