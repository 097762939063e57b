package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		dir      Direction
		steering bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionBoost, DirRight, false},
		{ActionPause, DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.steering {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.steering)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %v, expected %v", dir, tc.dir)
			}
		})
	}
}
