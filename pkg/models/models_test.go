package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_Order(t *testing.T) {
	assert.Equal(t, []Model{
		TextAda001,
		TextBabbage001,
		TextCurie001,
		TextDavinci003,
	}, All())
}

func TestFromOrdinal(t *testing.T) {
	tests := []struct {
		ordinal int
		want    Model
		ok      bool
	}{
		{1, TextAda001, true},
		{2, TextBabbage001, true},
		{3, TextCurie001, true},
		{4, TextDavinci003, true},
		{0, "", false},
		{5, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := FromOrdinal(tt.ordinal)
		assert.Equal(t, tt.ok, ok, "ordinal %d", tt.ordinal)
		assert.Equal(t, tt.want, got, "ordinal %d", tt.ordinal)
	}
}

func TestModel_Valid(t *testing.T) {
	for _, m := range All() {
		assert.True(t, m.Valid(), m)
	}

	assert.False(t, Model("gpt-4").Valid())
	assert.False(t, Model("").Valid())
}

func TestModel_String(t *testing.T) {
	assert.Equal(t, "text-davinci-003", TextDavinci003.String())
}
