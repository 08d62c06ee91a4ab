package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseRequest(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		merchantID string
		items      []LineItem

		expected    PurchaseRequest
		expectedErr error
	}

	tests := []testCase{
		{
			name:       "valid request is trimmed",
			merchantID: " merchant-1 ",
			items:      []LineItem{{ProductID: " p-1", Quantity: 2}, {ProductID: "p-2", Quantity: 1}},
			expected: PurchaseRequest{
				MerchantID: "merchant-1",
				Items:      []LineItem{{ProductID: "p-1", Quantity: 2}, {ProductID: "p-2", Quantity: 1}},
			},
		},
		{
			name:        "missing merchant",
			merchantID:  "  ",
			items:       []LineItem{{ProductID: "p-1", Quantity: 1}},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "empty items",
			merchantID:  "merchant-1",
			items:       []LineItem{},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "nil items",
			merchantID:  "merchant-1",
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "zero quantity",
			merchantID:  "merchant-1",
			items:       []LineItem{{ProductID: "p-1", Quantity: 0}},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "negative quantity",
			merchantID:  "merchant-1",
			items:       []LineItem{{ProductID: "p-1", Quantity: 1}, {ProductID: "p-2", Quantity: -3}},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "missing product id",
			merchantID:  "merchant-1",
			items:       []LineItem{{ProductID: "", Quantity: 1}},
			expectedErr: &InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewPurchaseRequest(tt.merchantID, tt.items)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, KindInvalidArgument, KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}
