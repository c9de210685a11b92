package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
		description string
	}{
		{
			name:        "Test 1: valid password",
			password:    "Str0ngPass",
			expectError: false,
			description: "Meets length, case and digit rules",
		},
		{
			name:        "Test 2: too short",
			password:    "Ab1",
			expectError: true,
			description: "Under 8 characters",
		},
		{
			name:        "Test 3: no uppercase",
			password:    "weakpass1",
			expectError: true,
			description: "Needs at least one uppercase letter",
		},
		{
			name:        "Test 4: no lowercase",
			password:    "WEAKPASS1",
			expectError: true,
			description: "Needs at least one lowercase letter",
		},
		{
			name:        "Test 5: no digit",
			password:    "WeakPassword",
			expectError: true,
			description: "Needs at least one number",
		},
		{
			name:        "Test 6: contains space",
			password:    "Str0ng Pass",
			expectError: true,
			description: "Spaces are not allowed",
		},
	}

	a := &AuthHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.validatePassword(tt.password)
			if tt.expectError {
				assert.Error(t, err, tt.description)
			} else {
				assert.NoError(t, err, tt.description)
			}
		})
	}
}
