package game

import "testing"

func TestPredictPath(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		ball     Ball
		steps    int
		wantLen  int
		wantLast Point
	}{
		{
			name:     "Straight to the right goal",
			ball:     Ball{X: 560, Y: 195, Size: 10, SpeedX: 5},
			steps:    100,
			wantLen:  7,
			wantLast: Point{595, 200},
		},
		{
			name:     "Step limit",
			ball:     Ball{X: 300, Y: 200, Size: 10, SpeedX: -5, SpeedY: 3},
			steps:    4,
			wantLen:  5,
			wantLast: Point{285, 217},
		},
		{
			name:     "Bounces off the top wall",
			ball:     Ball{X: 300, Y: 4, Size: 10, SpeedX: 5, SpeedY: -3},
			steps:    3,
			wantLen:  4,
			wantLast: Point{320, 6},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.ball
			path := PredictPath(tc.ball, cfg, tc.steps)
			if len(path) != tc.wantLen {
				t.Fatalf("len = %d, want %d: %v", len(path), tc.wantLen, path)
			}
			if last := path[len(path)-1]; last != tc.wantLast {
				t.Errorf("last = %+v, want %+v", last, tc.wantLast)
			}
			if tc.ball != before {
				t.Error("prediction mutated the ball")
			}
		})
	}
}
