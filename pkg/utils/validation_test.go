package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidator_CheckString(t *testing.T) {
	v := NewValidator("en")

	assert.True(t, v.CheckString("name", "Cleaning", 1, 255).Valid)

	r := v.CheckString("name", "   ", 1, 255)
	assert.False(t, r.Valid)
	assert.Equal(t, "name", r.Field)
	assert.Equal(t, "name is a required field", r.Message)
}

func TestValidator_CheckNumber(t *testing.T) {
	v := NewValidator("en")
	zero := decimal.Zero
	hundred := decimal.NewFromInt(100)

	assert.True(t, v.CheckNumber("price", decimal.NewFromInt(0), &zero, nil).Valid)
	assert.True(t, v.CheckNumber("tax", decimal.NewFromInt(100), &zero, &hundred).Valid)

	r := v.CheckNumber("price", decimal.NewFromInt(-1), &zero, nil)
	assert.False(t, r.Valid)
	assert.Equal(t, "price must be 0 or greater", r.Message)

	assert.False(t, v.CheckNumber("tax", decimal.NewFromFloat(100.5), &zero, &hundred).Valid)
}

func TestValidator_CheckDecimal(t *testing.T) {
	v := NewValidator("en")
	zero := decimal.Zero
	maxPrice := decimal.RequireFromString("9999999999999.99")

	assert.True(t, v.CheckDecimal("price", decimal.RequireFromString("9999999999999.99"), &zero, &maxPrice, 2).Valid)
	assert.True(t, v.CheckDecimal("price", decimal.RequireFromString("12.50"), &zero, &maxPrice, 2).Valid)
	assert.True(t, v.CheckDecimal("price", decimal.RequireFromString("12.500"), &zero, &maxPrice, 2).Valid)

	r := v.CheckDecimal("price", decimal.RequireFromString("0.005"), &zero, &maxPrice, 2)
	assert.False(t, r.Valid)
	assert.Equal(t, "price must have at most 2 decimal places", r.Message)

	assert.False(t, v.CheckDecimal("price", decimal.RequireFromString("100000000000000"), &zero, &maxPrice, 2).Valid)
	assert.False(t, v.CheckDecimal("price", decimal.NewFromInt(-1), &zero, &maxPrice, 2).Valid)

	r = NewValidator("id").CheckDecimal("tax", decimal.RequireFromString("10.125"), &zero, nil, 2)
	assert.False(t, r.Valid)
	assert.Equal(t, "tax maksimal memiliki 2 angka desimal", r.Message)
}

func TestValidator_EmailDateUUIDOneOf(t *testing.T) {
	v := NewValidator("en")

	assert.True(t, v.CheckEmail("email", "resident@example.com").Valid)
	r := v.CheckEmail("email", "not-an-email")
	assert.False(t, r.Valid)
	assert.Contains(t, r.Message, "valid email")

	assert.True(t, v.CheckDate("due_date", "2026-10-22").Valid)
	assert.False(t, v.CheckDate("due_date", "22/10/2026").Valid)

	assert.True(t, v.CheckUUID("document_id", "0b3c5d6e-9a1f-4a52-8f0e-1c2d3e4f5a6b").Valid)
	assert.False(t, v.CheckUUID("document_id", "1234").Valid)

	assert.True(t, v.CheckOneOf("reminderType", "overdue", "3days", "7days", "overdue").Valid)
	r = v.CheckOneOf("reminderType", "tomorrow", "3days", "7days", "overdue")
	assert.False(t, r.Valid)
	assert.Contains(t, r.Message, "reminderType")

	assert.False(t, v.CheckID("user_id", 0).Valid)
	assert.True(t, v.CheckID("user_id", 4).Valid)
}

func TestValidator_RequiredAndNotEqual(t *testing.T) {
	v := NewValidator("en")

	assert.True(t, v.CheckRequired("price", true).Valid)
	r := v.CheckRequired("price", false)
	assert.False(t, r.Valid)
	assert.Equal(t, "price is a required field", r.Message)

	assert.True(t, v.CheckNotEqual("name", "cleaning", "rent").Valid)
	assert.False(t, v.CheckNotEqual("name", " Rent ", "rent").Valid)
}

func TestValidator_LocalizedMessages(t *testing.T) {
	enMsg := NewValidator("en").CheckString("name", "", 1, 10).Message
	idV := NewValidator("id")
	idMsg := idV.CheckString("name", "", 1, 10).Message

	assert.Equal(t, "id", idV.Locale())
	assert.NotEmpty(t, idMsg)
	assert.NotEqual(t, enMsg, idMsg)
	assert.Contains(t, idMsg, "name")
}

func TestValidator_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	v := NewValidator("xx")
	assert.Equal(t, "en", v.Locale())
}

func TestValidator_Struct(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Floor int    `json:"floor" validate:"gte=0"`
	}
	v := NewValidator("en")

	assert.Nil(t, v.Struct(payload{Email: "a@b.co", Floor: 2}))

	fails := v.Struct(payload{Email: "", Floor: -1})
	assert.Len(t, fails, 2)
	assert.Equal(t, "email is a required field", fails["email"])
	assert.Contains(t, fails, "floor")
}

func TestFailures(t *testing.T) {
	assert.Nil(t, Failures(Result{Field: "a", Valid: true}))
	got := Failures(Result{Field: "a", Valid: true}, Result{Field: "b", Message: "bad"})
	assert.Equal(t, map[string]string{"b": "bad"}, got)
}
