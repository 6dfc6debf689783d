package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPIN(t *testing.T) {
	assert.True(t, ValidPIN("12-345678901-2"))
	assert.True(t, ValidPIN("00-000000000-0"))

	assert.False(t, ValidPIN(""))
	assert.False(t, ValidPIN("12345678901-2"))
	assert.False(t, ValidPIN("1-234567890-1"))
	assert.False(t, ValidPIN("12-34567890-12"))
	assert.False(t, ValidPIN("ab-cdefghijk-l"))
	assert.False(t, ValidPIN("12-345678901-23"))
}

func TestMemberValidate(t *testing.T) {
	m := &Member{PIN: "12-345678901-2", FullName: "Juan Dela Cruz", DateOfBirth: "1990-01-01"}
	assert.NoError(t, m.Validate())

	assert.Error(t, (&Member{FullName: "Juan Dela Cruz", DateOfBirth: "1990-01-01"}).Validate())
	assert.Error(t, (&Member{PIN: "bad", FullName: "Juan Dela Cruz", DateOfBirth: "1990-01-01"}).Validate())
	assert.Error(t, (&Member{PIN: "12-345678901-2", DateOfBirth: "1990-01-01"}).Validate())
	assert.Error(t, (&Member{PIN: "12-345678901-2", FullName: "Juan Dela Cruz"}).Validate())
}
