package internal

import (
	"errors"
	"testing"
)

type testData struct {
	Input string
}

func TestParsePrompt(t *testing.T) {
	testCases := []struct {
		name           string
		promptTemplate string
		data           interface{}
		expected       string
		expectedErr    error
	}{
		{
			name:           "Valid template and data",
			promptTemplate: "Classify the following input: {{.Input}}",
			data:           testData{Input: "notitie Jan eet niet"},
			expected:       "Classify the following input: notitie Jan eet niet",
			expectedErr:    nil,
		},
		{
			name:           "Invalid template",
			promptTemplate: "Classify the following input: {{.Input.",
			data:           testData{Input: "notitie Jan eet niet"},
			expected:       "",
			expectedErr:    errors.New("template: prompt:1: unexpected \".\" in operand"),
		},
		{
			name:           "Invalid data property",
			promptTemplate: "Classify the following input: {{.InvalidProperty}}",
			data:           testData{Input: "notitie Jan eet niet"},
			expected:       "",
			expectedErr: errors.New(
				"template: prompt:1:32: executing \"prompt\" at <.InvalidProperty>: can't evaluate field InvalidProperty in type internal.testData",
			),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParsePrompt(tc.promptTemplate, tc.data)
			if result != tc.expected {
				t.Errorf("Expected: %s, Got: %s", tc.expected, result)
			}
			if (err == nil) != (tc.expectedErr == nil) ||
				(err != nil && err.Error() != tc.expectedErr.Error()) {
				t.Errorf("Expected error: %v, Got error: %v", tc.expectedErr, err)
			}
		})
	}
}
