package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 2, 10, 4)

	if r.Right() != 13 {
		t.Errorf("Right() = %d, want 13", r.Right())
	}
	if r.Bottom() != 6 {
		t.Errorf("Bottom() = %d, want 6", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		x, y int
		want bool
	}{
		{
			name: "top-left corner is inside",
			r:    NewRect(2, 2, 5, 3),
			x:    2, y: 2,
			want: true,
		},
		{
			name: "interior cell",
			r:    NewRect(2, 2, 5, 3),
			x:    4, y: 3,
			want: true,
		},
		{
			name: "right edge is exclusive",
			r:    NewRect(2, 2, 5, 3),
			x:    7, y: 2,
			want: false,
		},
		{
			name: "bottom edge is exclusive",
			r:    NewRect(2, 2, 5, 3),
			x:    2, y: 5,
			want: false,
		},
		{
			name: "outside entirely",
			r:    NewRect(2, 2, 5, 3),
			x:    0, y: 0,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		want          int
	}{
		{"inside the band", 0, -5, 5, 0},
		{"above the ground line", -3, 0, 20, 0},
		{"past the right wall", 9, -5, 5, 5},
		{"exactly at min", -5, -5, 5, -5},
		{"exactly at max", 5, -5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min(3, 7) = %d, want 3", got)
	}
	if got := Min(7, 3); got != 3 {
		t.Errorf("Min(7, 3) = %d, want 3", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Errorf("Max(3, 7) = %d, want 7", got)
	}
	if got := Max(-2, -9); got != -2 {
		t.Errorf("Max(-2, -9) = %d, want -2", got)
	}
}
