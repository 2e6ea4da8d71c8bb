// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Enter(t *testing.T) {
	tests := []struct {
		name        string
		from        State
		to          State
		expectedErr error
	}{
		{name: "create", from: Uninitialized, to: Created},
		{name: "free", from: Stopped, to: Freed},
		{name: "skip", from: Created, to: Running, expectedErr: ErrInvalidTransition},
		{name: "backwards", from: Running, to: Configured, expectedErr: ErrInvalidTransition},
		{name: "same", from: Configured, to: Configured, expectedErr: ErrInvalidTransition},
		{name: "after freed", from: Freed, to: DumpRequested, expectedErr: ErrInvalidTransition},
		{name: "side state", from: Configured, to: DumpRequested, expectedErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notified []State

			c := &Controller{
				state: tt.from,
				OnTransition: func(_, to State) {
					notified = append(notified, to)
				},
			}

			err := c.enter(tt.to)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				assert.Equal(t, tt.from, c.State())
				assert.Empty(t, notified)

				return
			}

			assert.Equal(t, tt.to, c.State())
			assert.Equal(t, []State{tt.to}, notified)
		})
	}
}
