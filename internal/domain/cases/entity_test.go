package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"DRAFT", StatusSubmitted}, // legacy
		{"submitted", StatusSubmitted},
		{"IN_REVIEW", StatusInReview},
		{"in review", StatusInReview},
		{"Approved", StatusApproved},
		{"REJECTED", StatusRejected},
		{"Conditionally Approved", StatusConditional},
		{"Conditional Approved", StatusConditional}, // UI variation
		{"  Approved  ", StatusApproved},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeStatusPassthrough(t *testing.T) {
	assert.Equal(t, Status("Archived"), NormalizeStatus("Archived"))
}
