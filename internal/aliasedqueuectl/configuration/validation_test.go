package configuration

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonconfig "github.com/G-Research/aliasedqueue/internal/common/config"
)

func TestValidate(t *testing.T) {
	items := commonconfig.ScalarOrList{Values: []string{"a"}, Single: true}
	tests := map[string]struct {
		config           PlanConfig
		expectValidation bool
		expectedErrors   int
	}{
		"valid": {
			config: PlanConfig{
				Ordering: OrderingDescending,
				Queues: []QueueConfig{
					{Alias: "high", Priority: 10, Items: items},
					{Alias: "low", Priority: 1},
					{Alias: "high", Priority: 10},
				},
				Steps: []StepConfig{
					{Op: OpEnqueue, Alias: "low", Item: "x"},
					{Op: OpDequeue, Count: 2},
					{Op: OpAddQueue, Alias: "mid", Priority: 5},
					{Op: OpDelQueue, Alias: "low"},
					{Op: OpAliases},
					{Op: OpShow},
					{Op: OpDrain},
				},
			},
		},
		"empty": {
			config: PlanConfig{},
		},
		"unknown ordering": {
			config:           PlanConfig{Ordering: "sideways"},
			expectValidation: true,
		},
		"missing alias": {
			config:           PlanConfig{Queues: []QueueConfig{{Priority: 1}}},
			expectValidation: true,
		},
		"unknown op": {
			config:           PlanConfig{Steps: []StepConfig{{Op: "peek"}}},
			expectValidation: true,
		},
		"enqueue without item": {
			config:           PlanConfig{Steps: []StepConfig{{Op: OpEnqueue, Alias: "a"}}},
			expectValidation: true,
		},
		"delQueue without alias": {
			config:           PlanConfig{Steps: []StepConfig{{Op: OpDelQueue}}},
			expectValidation: true,
		},
		"negative count": {
			config:           PlanConfig{Steps: []StepConfig{{Op: OpDequeue, Count: -1}}},
			expectValidation: true,
		},
		"conflicting priorities": {
			config: PlanConfig{
				Queues: []QueueConfig{
					{Alias: "a", Priority: 1},
					{Alias: "b", Priority: 1},
					{Alias: "a", Priority: 2},
					{Alias: "b", Priority: 3},
				},
			},
			expectedErrors: 2,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.config.Validate()
			if !tc.expectValidation && tc.expectedErrors == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.expectValidation {
				var validationErrors validator.ValidationErrors
				assert.True(t, errors.As(err, &validationErrors))
			}
			if tc.expectedErrors > 0 {
				var merr *multierror.Error
				require.True(t, errors.As(err, &merr))
				assert.Len(t, merr.Errors, tc.expectedErrors)
			}
		})
	}
}

func TestDescending(t *testing.T) {
	assert.True(t, PlanConfig{Ordering: OrderingDescending}.Descending())
	assert.False(t, PlanConfig{Ordering: OrderingAscending}.Descending())
	assert.False(t, PlanConfig{}.Descending())
}
