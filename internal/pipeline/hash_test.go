package pipeline

import "testing"

func TestResultHashDeterministic(t *testing.T) {
	a := ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, ptr(14.2))
	b := ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, ptr(14.2))

	if a != b {
		t.Errorf("identical observations hash differently: %s vs %s", a, b)
	}

	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestResultHashSensitivity(t *testing.T) {
	base := ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, ptr(14.2))

	variants := map[string]string{
		"cpu":     ResultHash("i5-8400", "h264_1080p", "ribblehead_1080p", 12677, 93, ptr(14.2)),
		"test":    ResultHash("i5-8500", "hevc_8bit", "ribblehead_1080p", 12677, 93, ptr(14.2)),
		"file":    ResultHash("i5-8500", "h264_1080p", "ribblehead_4k", 12677, 93, ptr(14.2)),
		"bitrate": ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12678, 93, ptr(14.2)),
		"fps":     ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 94, ptr(14.2)),
		"watts":   ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, ptr(14.3)),
	}

	for field, h := range variants {
		if h == base {
			t.Errorf("changing %s did not change the hash", field)
		}
	}
}

func TestResultHashNilWatts(t *testing.T) {
	withWatts := ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, ptr(14.2))
	noWatts := ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, nil)

	if withWatts == noWatts {
		t.Error("nil watts hashes identically to a real reading")
	}

	again := ResultHash("i5-8500", "h264_1080p", "ribblehead_1080p", 12677, 93, nil)
	if noWatts != again {
		t.Error("nil watts hash is not deterministic")
	}
}
