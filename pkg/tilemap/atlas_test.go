package tilemap

import (
	"image"
	"testing"
)

// TestFromGrid 测试图集布局参数校验
func TestFromGrid(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		cols    int
		rows    int
		wantErr bool
	}{
		{"Fields.png 布局", 16, 16, 6, 7, false},
		{"单格图集", 8, 8, 1, 1, false},
		{"零宽度", 0, 16, 6, 7, true},
		{"负高度", 16, -1, 6, 7, true},
		{"零列", 16, 16, 0, 7, true},
		{"零行", 16, 16, 6, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := FromGrid(tt.w, tt.h, tt.cols, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromGrid() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && layout.Len() != tt.cols*tt.rows {
				t.Errorf("Len() = %d, want %d", layout.Len(), tt.cols*tt.rows)
			}
		})
	}
}

// TestAtlasRect 测试精灵索引到像素矩形的换算
func TestAtlasRect(t *testing.T) {
	layout, err := FromGrid(16, 16, 6, 7)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}

	tests := []struct {
		name   string
		index  uint32
		want   image.Rectangle
		wantOK bool
	}{
		{"第一个格子", 0, image.Rect(0, 0, 16, 16), true},
		{"第一行末尾", 5, image.Rect(80, 0, 96, 16), true},
		{"左上角草地 18", 18, image.Rect(0, 48, 16, 64), true},
		{"填充草地 25", 25, image.Rect(16, 64, 32, 80), true},
		{"右下角草地 32", 32, image.Rect(32, 80, 48, 96), true},
		{"最后一个格子", 41, image.Rect(80, 96, 96, 112), true},
		{"越界", 42, image.Rectangle{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.Rect(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("Rect(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Rect(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

// TestAtlasRectWithPadding 测试带间距和偏移的布局
func TestAtlasRectWithPadding(t *testing.T) {
	layout, err := FromGridWithPadding(16, 16, 4, 2, 2, 1, 3, 4)
	if err != nil {
		t.Fatalf("FromGridWithPadding failed: %v", err)
	}

	got, ok := layout.Rect(5) // col=1, row=1
	if !ok {
		t.Fatal("Rect(5) should be valid")
	}
	want := image.Rect(3+18, 4+17, 3+18+16, 4+17+16)
	if got != want {
		t.Errorf("Rect(5) = %v, want %v", got, want)
	}

	w, h := layout.TextureSize()
	if w != 3+4*16+3*2 || h != 4+2*16+1 {
		t.Errorf("TextureSize() = %dx%d", w, h)
	}

	if _, err := FromGridWithPadding(16, 16, 4, 2, -1, 0, 0, 0); err == nil {
		t.Error("negative padding should be rejected")
	}
}
