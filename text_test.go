package ggchart

import "testing"

func TestFace(t *testing.T) {
	for _, weight := range []FontWeight{Regular, Bold} {
		face, err := Face(weight, 14)
		if err != nil {
			t.Fatalf("Face(%d, 14) error = %v", weight, err)
		}
		if face == nil {
			t.Fatalf("Face(%d, 14) returned nil", weight)
		}
		if face.Advance("42") <= 0 {
			t.Errorf("Face(%d).Advance(\"42\") <= 0", weight)
		}
	}
}

func TestFaceUnknownWeight(t *testing.T) {
	if _, err := Face(FontWeight(9), 12); err == nil {
		t.Error("Face(unknown weight) error = nil, want error")
	}
}
