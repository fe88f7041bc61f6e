package fbdev

import "testing"

func TestGeometryFrom(t *testing.T) {
	var (
		fix = fixScreenInfo{
			SmemLen:    8294400,
			LineLength: 7680,
		}
		vari = varScreenInfo{
			Xres:         1920,
			Yres:         1080,
			XresVirtual:  1920,
			YresVirtual:  2160,
			BitsPerPixel: 32,
			Red:          bitField{Offset: 16, Length: 8},
			Green:        bitField{Offset: 8, Length: 8},
			Blue:         bitField{Offset: 0, Length: 8},
			Alpha:        bitField{Offset: 24, Length: 8},
		}
	)

	geom := geometryFrom(&fix, &vari)
	want := Geometry{
		Width:         1920,
		Height:        1080,
		VirtualWidth:  1920,
		VirtualHeight: 2160,
		BitsPerPixel:  32,
		Red:           Channel{Offset: 16, Length: 8},
		Green:         Channel{Offset: 8, Length: 8},
		Blue:          Channel{Offset: 0, Length: 8},
		Alpha:         Channel{Offset: 24, Length: 8},
		LineLength:    7680,
		SmemLen:       8294400,
	}
	if geom != want {
		t.Errorf("expected geometry %+v, got %+v", want, geom)
	}

	if geom.Padded() {
		t.Error("expected a tight stride not to report padding")
	}
	if v := geom.FrameBytes(); v != 8294400 {
		t.Errorf("expected 8294400 frame bytes, got %d", v)
	}
}
